package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Dwieght/deer-sub000/cmd/app"
	"github.com/Dwieght/deer-sub000/internal/config"
	handlers "github.com/Dwieght/deer-sub000/internal/handler"
	"github.com/Dwieght/deer-sub000/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	// the session token module cannot run without a signing secret;
	// refusing to start beats serving unauthenticatable admin routes
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// public submissions
	api.HandleFunc("/letters", handler.SubmitLetter).Methods(http.MethodPost)
	api.HandleFunc("/gallery", handler.SubmitGalleryItem).Methods(http.MethodPost)
	api.HandleFunc("/contact", handler.SubmitContact).Methods(http.MethodPost)
	api.HandleFunc("/join", handler.SubmitJoin).Methods(http.MethodPost)
	api.HandleFunc("/feedback", handler.SubmitFeedback).Methods(http.MethodPost)
	api.HandleFunc("/payments", handler.SubmitPayment).Methods(http.MethodPost)
	api.HandleFunc("/orders", handler.Checkout).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", handler.LookupOrder).Methods(http.MethodGet)

	// public reads (approved content only)
	api.HandleFunc("/letters", handler.GetLetters).Methods(http.MethodGet)
	api.HandleFunc("/gallery", handler.GetGallery).Methods(http.MethodGet)
	api.HandleFunc("/announcements", handler.GetAnnouncements).Methods(http.MethodGet)
	api.HandleFunc("/products", handler.GetProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", handler.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/videos", handler.GetVideos).Methods(http.MethodGet)

	api.HandleFunc("/admin/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", handler.Logout).Methods(http.MethodPost)

	// everything below requires a valid session
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(mux.MiddlewareFunc(middleware.SessionAuth(cfg)))

	admin.HandleFunc("/stats", handler.Stats).Methods(http.MethodGet)
	admin.HandleFunc("/admins", handler.UpsertAdmin).Methods(http.MethodPost)

	admin.HandleFunc("/moderation/{kind}/pending", handler.ListPending).Methods(http.MethodGet)
	admin.HandleFunc("/moderation/{kind}/{id}/approve", handler.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/moderation/{kind}/{id}/decline", handler.Decline).Methods(http.MethodDelete)

	admin.HandleFunc("/letters", handler.AdminCreateLetter).Methods(http.MethodPost)
	admin.HandleFunc("/letters/{id}", handler.AdminUpdateLetter).Methods(http.MethodPut)
	admin.HandleFunc("/letters/{id}", handler.AdminDeleteLetter).Methods(http.MethodDelete)

	admin.HandleFunc("/gallery", handler.AdminCreateGalleryItem).Methods(http.MethodPost)
	admin.HandleFunc("/gallery/{id}", handler.AdminUpdateGalleryItem).Methods(http.MethodPut)
	admin.HandleFunc("/gallery/{id}", handler.AdminDeleteGalleryItem).Methods(http.MethodDelete)

	admin.HandleFunc("/announcements", handler.AdminCreateAnnouncement).Methods(http.MethodPost)
	admin.HandleFunc("/announcements/{id}", handler.AdminUpdateAnnouncement).Methods(http.MethodPut)
	admin.HandleFunc("/announcements/{id}", handler.AdminDeleteAnnouncement).Methods(http.MethodDelete)

	admin.HandleFunc("/products", handler.AdminCreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", handler.AdminUpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", handler.AdminDeleteProduct).Methods(http.MethodDelete)

	admin.HandleFunc("/orders", handler.AdminListOrders).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}", handler.AdminUpdateOrder).Methods(http.MethodPut)
	admin.HandleFunc("/orders/{id}", handler.AdminDeleteOrder).Methods(http.MethodDelete)

	admin.HandleFunc("/qr-codes", handler.AdminListQRCodes).Methods(http.MethodGet)
	admin.HandleFunc("/qr-codes", handler.AdminCreateQRCode).Methods(http.MethodPost)
	admin.HandleFunc("/qr-codes/{id}", handler.AdminUpdateQRCode).Methods(http.MethodPut)
	admin.HandleFunc("/qr-codes/{id}", handler.AdminDeleteQRCode).Methods(http.MethodDelete)

	admin.HandleFunc("/payments", handler.AdminListPaymentSubmissions).Methods(http.MethodGet)
	admin.HandleFunc("/payments/{id}", handler.AdminUpdatePaymentSubmission).Methods(http.MethodPut)
	admin.HandleFunc("/payments/{id}", handler.AdminDeletePaymentSubmission).Methods(http.MethodDelete)

	admin.HandleFunc("/video-collections", handler.AdminCreateVideoCollection).Methods(http.MethodPost)
	admin.HandleFunc("/video-collections/{id}", handler.AdminUpdateVideoCollection).Methods(http.MethodPut)
	admin.HandleFunc("/video-collections/{id}", handler.AdminDeleteVideoCollection).Methods(http.MethodDelete)

	admin.HandleFunc("/video-items", handler.AdminCreateVideoItem).Methods(http.MethodPost)
	admin.HandleFunc("/video-items/{id}", handler.AdminUpdateVideoItem).Methods(http.MethodPut)
	admin.HandleFunc("/video-items/{id}", handler.AdminDeleteVideoItem).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)
	log.Printf("Database: %s", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
