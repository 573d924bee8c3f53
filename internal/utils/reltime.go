// Package utils holds small presentation helpers shared by the services.
package utils

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// frMagnitudes renders relative durations the way the site's French UI
// copy does ("il y a 3 minutes"). Thresholds follow humanize's defaults;
// only the wording changes.
var frMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "%s moins d'une minute", DivBy: time.Minute},
	{D: 2 * time.Minute, Format: "%s une minute", DivBy: time.Minute},
	{D: time.Hour, Format: "%s %d minutes", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "%s une heure", DivBy: time.Hour},
	{D: humanize.Day, Format: "%s %d heures", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "%s un jour", DivBy: humanize.Day},
	{D: humanize.Month, Format: "%s %d jours", DivBy: humanize.Day},
	{D: 2 * humanize.Month, Format: "%s un mois", DivBy: humanize.Month},
	{D: humanize.Year, Format: "%s %d mois", DivBy: humanize.Month},
	{D: 2 * humanize.Year, Format: "%s un an", DivBy: humanize.Year},
	{D: math.MaxInt64, Format: "%s %d ans", DivBy: humanize.Year},
}

// RelTimeFR returns a French relative-time label for t as seen from now,
// e.g. "il y a 3 minutes" for a past t or "dans 2 heures" for a future one.
func RelTimeFR(t, now time.Time) string {
	return humanize.CustomRelTime(t, now, "il y a", "dans", frMagnitudes)
}
