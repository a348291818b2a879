package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"stylegenie-backend/internal/config"
	"stylegenie-backend/internal/db"
	"stylegenie-backend/internal/httpserver"
	cartrepo "stylegenie-backend/internal/repository/cart"
	orderrepo "stylegenie-backend/internal/repository/order"
	productrepo "stylegenie-backend/internal/repository/product"
	userrepo "stylegenie-backend/internal/repository/user"
	wishlistrepo "stylegenie-backend/internal/repository/wishlist"
	cartsvc "stylegenie-backend/internal/service/cart"
	ordersvc "stylegenie-backend/internal/service/order"
	productsvc "stylegenie-backend/internal/service/product"
	usersvc "stylegenie-backend/internal/service/user"
	wishlistsvc "stylegenie-backend/internal/service/wishlist"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	wishlistRepo := wishlistrepo.NewPostgres(dbpool, logger)

	productService := productsvc.New(productRepo)
	cartService := cartsvc.New(cartRepo, productRepo)
	orderService := ordersvc.New(orderRepo, cartRepo, logger)
	userService := usersvc.New(userRepo, cfg.JWTSecret)
	wishlistService := wishlistsvc.New(wishlistRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		ProductSvc:  productService,
		CartSvc:     cartService,
		OrderSvc:    orderService,
		UserSvc:     userService,
		WishlistSvc: wishlistService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
