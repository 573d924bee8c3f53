package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/creatorhubtz/creatorhub-backend/internal/domain"
)

// seedStreamers is the fixed profile data the site ships with.
var seedStreamers = []domain.Streamer{
	{
		Name:           "Tayomi20",
		Slug:           "tayomi20",
		Description:    "Streamer déjanté avec un humour noir et décalé qui aime partager sa passion pour les jeux d'aventure et FPS. Spécialisé dans Hollow Knight, Call of Duty et Fortnite, il n'hésite pas à tenter de nouveaux défis et à interagir avec sa communauté. Amateur de speedrun et de compétition, ses streams sont toujours remplis d'action et de moments mémorables.",
		ProfileImage:   "https://creatorhubtz.s-ul.eu/YzZelHjY",
		BannerImage:    "https://creatorhubtz.s-ul.eu/xDA2KVkP",
		TwitchUsername: "tayomi20",
		TikTokUsername: "tayomi_20",
	},
	{
		Name:           "Zeyphir",
		Slug:           "zeyphir",
		Description:    "Tout pour l'argent! 🐀 Expert en Rocket League, GTA V et Minecraft, Zeyphir est connu pour son style de jeu unique et son humour noir décalé. Maître dans l'art du trading et des combines sur GTA V, il partage ses techniques pour devenir riche dans les jeux. Fan de compétition sur Rocket League et créateur de contenu varié sur Minecraft et Fortnite, ses streams sont un mélange parfait d'entertainment et de gameplay de haut niveau.",
		ProfileImage:   "https://creatorhubtz.s-ul.eu/9JzlVnFB",
		BannerImage:    "https://creatorhubtz.s-ul.eu/jMNgQY9I",
		TwitchUsername: "zayphir_",
		YouTubeChannel: "Zeyphir_Officiel",
		TikTokUsername: "1Gars.Random",
	},
}

// Seed inserts the shipped streamer profiles. It runs exactly once at
// startup, before the HTTP layer starts serving; nothing mutates the
// streamers table afterwards.
func Seed(ctx context.Context, db *gorm.DB) error {
	for i := range seedStreamers {
		s := seedStreamers[i]
		if _, err := CreateStreamer(ctx, db, &s); err != nil {
			return err
		}
	}
	return nil
}
