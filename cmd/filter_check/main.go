package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"moodfeed/internal/config"
	"moodfeed/internal/db"
	"moodfeed/internal/domain"
	"moodfeed/internal/repository"
	"moodfeed/internal/service"
)

// Scenario describe una pasada del filtro con el resultado esperado por post.
type Scenario struct {
	Name       string
	Mood       domain.Mood
	Strength   domain.FilterStrength
	SubEmotion domain.SubEmotion
	Seed       int64
	Posts      []domain.Post
	Filtered   map[string]bool
	Boosted    map[string]bool
}

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var source repository.PostRepository = repository.NewFixtureFeedRepository()
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			log.Fatalf("db pool: %v", err)
		}
		defer pool.Close()
		source = repository.NewPgPostRepository(pool)
	}

	feedPosts, err := source.ListPosts(ctx, cfg.FeedLimit)
	if err != nil {
		log.Fatalf("list posts: %v", err)
	}

	filter := service.NewMoodFilter(nil)
	scenarios := []Scenario{
		{
			Name:       "Contraste con sub-emocion siempre filtra en high",
			Mood:       domain.MoodHappy,
			Strength:   domain.FilterStrengthHigh,
			SubEmotion: domain.SubEmotionJoyful,
			Seed:       7,
			Posts: []domain.Post{
				{ID: "p1", Moods: []domain.Mood{domain.MoodSad}},
				{ID: "p2", Moods: []domain.Mood{domain.MoodCalm}},
				{ID: "p3", Moods: []domain.Mood{domain.MoodHappy}},
			},
			Filtered: map[string]bool{"p1": true},
			Boosted:  map[string]bool{"p2": true},
		},
		{
			Name:     "Moods fuera del grafo pasan intactos",
			Mood:     domain.MoodAngry,
			Strength: domain.FilterStrengthLow,
			Seed:     1,
			Posts: []domain.Post{
				{ID: "p1", Moods: []domain.Mood{domain.MoodAngry}},
				{ID: "p2", Moods: []domain.Mood{domain.MoodSad}},
			},
			Filtered: map[string]bool{},
			Boosted:  map[string]bool{},
		},
	}

	passed := 0
	total := len(scenarios)

	for _, sc := range scenarios {
		fmt.Printf("=== Ejecutando: %s ===\n", sc.Name)
		out, err := filter.Apply(sc.Posts, sc.Mood, sc.Strength, sc.SubEmotion, service.NewRandSource(sc.Seed))
		if err != nil {
			fmt.Printf("❌ FAIL [%s] apply: %v\n\n", sc.Name, err)
			continue
		}
		ok := true
		for _, p := range out {
			if p.Filtered != sc.Filtered[p.ID] || p.Boosted != sc.Boosted[p.ID] {
				fmt.Printf("   post %s filtered=%t boosted=%t\n", p.ID, p.Filtered, p.Boosted)
				ok = false
			}
		}
		if ok {
			fmt.Printf("✅ PASS [%s]\n\n", sc.Name)
			passed++
		} else {
			fmt.Printf("❌ FAIL [%s]\n\n", sc.Name)
		}
	}

	// Exclusividad y reproducibilidad sobre el feed real, para cada mood y fuerza.
	total++
	exclusive := true
	for _, mood := range domain.AllMoods() {
		for _, strength := range []domain.FilterStrength{domain.FilterStrengthLow, domain.FilterStrengthMedium, domain.FilterStrengthHigh} {
			a, errA := filter.Apply(feedPosts, mood, strength, "", service.NewRandSource(99))
			b, errB := filter.Apply(feedPosts, mood, strength, "", service.NewRandSource(99))
			if errA != nil || errB != nil {
				fmt.Printf("❌ FAIL [%s/%s] apply: %v %v\n", mood, strength, errA, errB)
				exclusive = false
				continue
			}
			for i := range a {
				if a[i].Filtered && a[i].Boosted {
					fmt.Printf("   post %s filtered and boosted (%s/%s)\n", a[i].ID, mood, strength)
					exclusive = false
				}
				if a[i].Filtered != b[i].Filtered || a[i].Boosted != b[i].Boosted {
					fmt.Printf("   post %s not reproducible (%s/%s)\n", a[i].ID, mood, strength)
					exclusive = false
				}
			}
		}
	}
	if exclusive {
		fmt.Printf("✅ PASS [feed: exclusividad y semilla] posts=%d\n\n", len(feedPosts))
		passed++
	} else {
		fmt.Printf("❌ FAIL [feed: exclusividad y semilla]\n\n")
	}

	fmt.Printf("Tests: %d/%d pasaron\n", passed, total)
	if passed != total {
		os.Exit(1)
	}
	os.Exit(0)
}
