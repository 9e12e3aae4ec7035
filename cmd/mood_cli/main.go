package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"moodfeed/internal/config"
	"moodfeed/internal/db"
	"moodfeed/internal/domain"
	"moodfeed/internal/repository"
	"moodfeed/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	fixtures := repository.NewFixtureFeedRepository()
	var (
		postRepo    repository.PostRepository    = fixtures
		commentRepo repository.CommentRepository = fixtures
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		postRepo = repository.NewPgPostRepository(pool)
		commentRepo = repository.NewPgCommentRepository(pool)
	}

	rng := service.NewRandSource(cfg.RandomSeed)
	sessions := repository.NewMemoryMoodSessionRepository(time.Duration(cfg.SessionTTLMinutes) * time.Minute)
	moodSvc := service.NewMoodService(logger, sessions, commentRepo, service.NewMoodInference(nil), domain.FilterStrength(cfg.DefaultFilterStrength), cfg.CommentWindow)
	feedSvc := service.NewFeedService(logger, postRepo, moodSvc, service.NewMoodFilter(nil), cfg.FeedLimit)
	assistantSvc := service.NewAssistantService(logger, moodSvc, nil)

	viewer := prompt(reader, "Usuario (enter para "+repository.DemoViewer+"): ")
	if viewer == "" {
		viewer = repository.DemoViewer
	}
	mood, sub := chooseMood(reader)
	session, err := moodSvc.StartSession(ctx, viewer, mood, sub)
	if err != nil {
		log.Fatalf("iniciar sesion: %v", err)
	}
	fmt.Println(assistantSvc.Greeting(session.ID).Text)

	for {
		fmt.Printf("\n--- Mood actual: %s ---\n", strings.ToUpper(string(mood)))
		fmt.Println("[1] Ver feed")
		fmt.Println("[2] Comentar")
		fmt.Println("[3] Hablar con el asistente")
		fmt.Println("[4] Cambiar fuerza del filtro")
		fmt.Println("[5] Cambiar mood")
		fmt.Println("[6] Salir")
		fmt.Print("Selecciona una opcion: ")
		choice, _ := reader.ReadString('\n')

		switch strings.TrimSpace(choice) {
		case "1":
			feed, err := feedSvc.BuildFeed(ctx, session.ID, rng)
			if err != nil {
				fmt.Printf("Error armando feed: %v\n", err)
				continue
			}
			printFeed(feed)
		case "2":
			text := prompt(reader, "Comentario: ")
			comment, updated, err := moodSvc.RecordComment(ctx, session.ID, text, rng)
			if err != nil {
				fmt.Printf("Error guardando comentario: %v\n", err)
				continue
			}
			fmt.Printf("Sentimiento: %s | mood detectado: %s\n", comment.Sentiment, updated.DetectedMood)
			if reply, err := assistantSvc.CheckIn(ctx, session.ID, rng); err == nil && reply != nil {
				printReply(*reply)
			}
		case "3":
			text := prompt(reader, "Tu > ")
			reply, err := assistantSvc.Reply(ctx, session.ID, text, rng)
			if err != nil {
				fmt.Printf("Error del asistente: %v\n", err)
				continue
			}
			printReply(reply)
		case "4":
			raw := prompt(reader, "Fuerza (low/medium/high): ")
			strength, err := domain.ParseFilterStrength(raw)
			if err != nil {
				fmt.Println("Fuerza invalida.")
				continue
			}
			if _, err := moodSvc.UpdateSettings(ctx, session.ID, service.SettingsPatch{MoodFilterStrength: &strength}); err != nil {
				fmt.Printf("Error actualizando ajustes: %v\n", err)
			}
		case "5":
			mood, sub = chooseMood(reader)
			if _, err := moodSvc.SelectMood(ctx, session.ID, mood, sub); err != nil {
				fmt.Printf("Error cambiando mood: %v\n", err)
			}
		case "6":
			return
		default:
			fmt.Println("Opcion invalida.")
		}
	}
}

func chooseMood(reader *bufio.Reader) (domain.Mood, domain.SubEmotion) {
	options := domain.MoodOptions()
	for {
		fmt.Println("Como te sentis hoy?")
		for i, opt := range options {
			fmt.Printf("[%d] %s %s - %s\n", i+1, opt.Icon, opt.Label, opt.Description)
		}
		idx, err := strconv.Atoi(prompt(reader, "Selecciona un mood: "))
		if err != nil || idx < 1 || idx > len(options) {
			fmt.Println("Seleccion invalida.")
			continue
		}
		selected := options[idx-1]

		fmt.Println("[0] Sin sub-emocion")
		for i, s := range selected.SubEmotions {
			fmt.Printf("[%d] %s - %s\n", i+1, s.Label, s.Description)
		}
		subIdx, err := strconv.Atoi(prompt(reader, "Sub-emocion: "))
		if err != nil || subIdx < 1 || subIdx > len(selected.SubEmotions) {
			return selected.ID, ""
		}
		return selected.ID, selected.SubEmotions[subIdx-1].ID
	}
}

func printFeed(feed service.Feed) {
	fmt.Printf("Referencia: %s (%s), fuerza %s\n", feed.ReferenceMood, feed.MoodSource, feed.Strength)
	if feed.Notice != "" {
		fmt.Println(feed.Notice)
	}
	for _, p := range feed.Posts {
		switch {
		case p.Filtered:
			fmt.Printf("  [oculto]  @%s: contenido que podria no coincidir con tu mood\n", p.Username)
		case p.Boosted:
			fmt.Printf("  [destacado] @%s: %s\n", p.Username, p.Caption)
		default:
			fmt.Printf("  @%s: %s\n", p.Username, p.Caption)
		}
	}
	fmt.Printf("Filtrados: %d | Destacados: %d | Total: %d\n", feed.Summary.Filtered, feed.Summary.Boosted, feed.Summary.Total)
}

func printReply(reply service.AssistantReply) {
	fmt.Printf("Asistente > %s\n", reply.Message.Text)
	if reply.Resources != nil {
		fmt.Printf("Asistente > %s\n", reply.Resources.Text)
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
