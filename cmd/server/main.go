// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/pressquest/pressquest-backend/internal/controller"
	"github.com/pressquest/pressquest-backend/internal/db"
	"github.com/pressquest/pressquest-backend/internal/handler"
	"github.com/pressquest/pressquest-backend/internal/queue"
	"github.com/pressquest/pressquest-backend/internal/repository"
	"github.com/pressquest/pressquest-backend/internal/service"
	"github.com/pressquest/pressquest-backend/internal/store"
)

func buildStore() store.Store {
	switch os.Getenv("STORE_BACKEND") {
	case "postgres":
		db.Init()
		st, err := store.NewPostgresStore(db.DB)
		if err != nil {
			log.Fatal("failed to init postgres store:", err)
		}
		return st
	case "memory":
		return store.NewMemoryStore()
	default:
		dir := os.Getenv("SESSION_DIR")
		if dir == "" {
			dir = ".session"
		}
		st, err := store.NewFileStore(dir)
		if err != nil {
			log.Fatal("failed to init file store:", err)
		}
		return st
	}
}

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	st := buildStore()
	q := queue.NewInMemoryQueue()

	questRepo := repository.NewQuestRepository(st)
	timelineRepo := &repository.TimelineRepository{Store: st}
	outreachRepo := &repository.OutreachRepository{Store: st}
	productRepo := &repository.ProductRepository{Store: st}

	contacts, err := repository.LoadContactsFile(contactsFile())
	if err != nil {
		log.Println("⚠️ No contacts file, using the built-in directory:", err)
	}
	contactRepo := repository.NewContactRepository(contacts)

	sendDelay := 1500 * time.Millisecond
	if ms, err := strconv.Atoi(os.Getenv("SEND_DELAY_MS")); err == nil && ms >= 0 {
		sendDelay = time.Duration(ms) * time.Millisecond
	}

	queue.StartOutreachSendSubscriber(q, outreachRepo, sendDelay)

	questService := &service.QuestService{QuestRepo: questRepo}
	timelineService := &service.TimelineService{TimelineRepo: timelineRepo, QuestRepo: questRepo}
	outreachService := &service.OutreachService{
		OutreachRepo: outreachRepo,
		ContactRepo:  contactRepo,
		QuestRepo:    questRepo,
		Queue:        q,
		SendDelay:    sendDelay,
	}
	productService := &service.ProductService{
		ProductRepo: productRepo,
		Generator:   service.CannedGenerator{},
	}

	questController := &controller.QuestController{
		QuestService: questService,
		ContactRepo:  contactRepo,
	}
	timelineController := &controller.TimelineController{TimelineService: timelineService}
	outreachController := &controller.OutreachController{
		OutreachService: outreachService,
		QuestService:    questService,
	}
	productController := &controller.ProductController{ProductService: productService}

	questHandler := &handler.QuestHandler{
		QuestRepo:       questRepo,
		OutreachService: outreachService,
	}

	r := chi.NewRouter()

	// Quest routes
	r.Post("/quests", questController.CreateQuest)
	r.Get("/quests", questController.ListQuests)
	r.Get("/quests/draft", questController.GetDraft)
	r.Put("/quests/draft", questController.SaveDraft)
	r.Delete("/quests/draft", questController.ClearDraft)
	r.Get("/quests/{id}", questHandler.GetQuestHandlerWithStats)
	r.Patch("/quests/{id}", questController.UpdateQuest)
	r.Get("/quests/{id}/recommended-contacts", questController.RecommendedContacts)

	// Timeline routes
	r.Get("/quests/{id}/timeline", timelineController.GetTimeline)
	r.Post("/quests/{id}/timeline", timelineController.AddEvent)
	r.Patch("/quests/{id}/timeline/{eventID}", timelineController.UpdateEvent)
	r.Delete("/quests/{id}/timeline/{eventID}", timelineController.DeleteEvent)

	// Outreach routes
	r.Get("/pitch-templates", outreachController.ListTemplates)
	r.Get("/contacts", questController.ListContacts)
	r.Post("/quests/{id}/outreach/preview", outreachController.PersonalizedPreview)
	r.Post("/quests/{id}/outreach/send", outreachController.SendCampaign)
	r.Get("/quests/{id}/outreach", outreachController.GetOutreach)

	// Product routes
	r.Post("/quests/{id}/products", productController.CreateProduct)
	r.Get("/quests/{id}/products", productController.ListProducts)
	r.Post("/quests/{id}/products/{productID}/edit", productController.ApplyEdit)
	r.Post("/quests/{id}/products/{productID}/status", productController.SetStatus)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

func contactsFile() string {
	if path := os.Getenv("CONTACTS_FILE"); path != "" {
		return path
	}
	return "seed/contacts.json"
}
