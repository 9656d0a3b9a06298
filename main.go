package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	config "github.com/Davi-Bueno/api-vendas/configs"
	"github.com/Davi-Bueno/api-vendas/internal/auth"
	"github.com/Davi-Bueno/api-vendas/internal/db"
	"github.com/Davi-Bueno/api-vendas/internal/handlers"
	"github.com/Davi-Bueno/api-vendas/internal/logger"
	"github.com/Davi-Bueno/api-vendas/internal/middleware"
)

func main() {

	cfg := config.LoadServerConfig()

	slogger := logger.New(logger.Options{
		Service: "api-vendas",
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
	})

	db.Init()

	// A shared redis keeps revocations visible across instances and lets
	// entries expire with their tokens; without it, the in-memory set holds.
	if redisCfg := config.LoadRedisConfig(); redisCfg.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
		})
		auth.SetBlacklist(auth.NewRedisBlacklist(client))
		slogger.Info("blacklist redis habilitada", "addr", redisCfg.Addr)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(slogger),
		middleware.ErrorHandler(cfg.Env),
	)

	registerRoutes(r)

	slogger.Info("servidor iniciado", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func registerRoutes(r *gin.Engine) {

	// ── home ──
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Bem-vindo à API de Vendas de Eletrodomésticos",
			"status":  "online",
			"version": "1.0.0",
			"endpoints": gin.H{
				"auth":             "/login, /logout, /auth/verify",
				"clientes":         "/clientes",
				"vendedores":       "/vendedores",
				"eletrodomesticos": "/eletrodomesticos",
				"carrinhos":        "/carrinhos",
				"carrinhoEletro":   "/carrinho-eletro",
			},
		})
	})

	// ── auth ──
	r.POST("/login", auth.Login)
	r.POST("/logout", auth.Logout)
	r.GET("/auth/verify", auth.Verify)

	// ── clientes ──
	r.GET("/clientes", handlers.GetClientes)
	r.GET("/clientes/:id", handlers.GetClienteByID)
	r.GET("/clientes/:id/carrinhos", handlers.GetCarrinhosByCliente)
	r.POST("/clientes", auth.RequireAuth(), handlers.CreateCliente)
	r.PUT("/clientes/:id", auth.RequireAuth(), handlers.UpdateCliente)
	r.DELETE("/clientes/:id", auth.RequireAuth(), handlers.DeleteCliente)

	// ── vendedores ──
	r.GET("/vendedores", handlers.GetVendedores)
	r.GET("/vendedores/:id", handlers.GetVendedorByID)
	r.GET("/vendedores/:id/eletrodomesticos", handlers.GetEletrodomesticosByVendedor)
	r.POST("/vendedores", auth.RequireAuth(), handlers.CreateVendedor)
	r.PUT("/vendedores/:id", auth.RequireAuth(), handlers.UpdateVendedor)
	r.DELETE("/vendedores/:id", auth.RequireAuth(), handlers.DeleteVendedor)

	// ── eletrodomésticos ──
	r.GET("/eletrodomesticos", handlers.GetEletrodomesticos)
	r.GET("/eletrodomesticos/:id", handlers.GetEletrodomesticoByID)
	r.POST("/eletrodomesticos", auth.RequireAuth(), handlers.CreateEletrodomestico)
	r.PUT("/eletrodomesticos/:id", auth.RequireAuth(), handlers.UpdateEletrodomestico)
	r.DELETE("/eletrodomesticos/:id", auth.RequireAuth(), handlers.DeleteEletrodomestico)

	// ── carrinhos ──
	r.GET("/carrinhos", handlers.GetCarrinhos)
	r.GET("/carrinhos/:id", handlers.GetCarrinhoByID)
	r.GET("/carrinhos/:id/total", handlers.GetCarrinhoTotal)
	r.GET("/carrinhos/:id/itens", handlers.GetItensByCarrinho)
	r.POST("/carrinhos", auth.RequireAuth(), handlers.CreateCarrinho)
	r.PUT("/carrinhos/:id", auth.RequireAuth(), handlers.UpdateCarrinho)
	r.DELETE("/carrinhos/:id", auth.RequireAuth(), handlers.DeleteCarrinho)
	r.DELETE("/carrinhos/:id/itens", auth.RequireAuth(), handlers.ClearCarrinho)

	// ── itens do carrinho ──
	r.GET("/carrinho-eletro", handlers.GetCarrinhoEletros)
	r.GET("/carrinho-eletro/:carrinhoId/:eletrodomesticoId", handlers.GetCarrinhoEletroByID)
	r.POST("/carrinho-eletro", auth.RequireAuth(), handlers.CreateCarrinhoEletro)
	r.PUT("/carrinho-eletro/:carrinhoId/:eletrodomesticoId", auth.RequireAuth(), handlers.UpdateCarrinhoEletro)
	r.DELETE("/carrinho-eletro/:carrinhoId/:eletrodomesticoId", auth.RequireAuth(), handlers.DeleteCarrinhoEletro)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "Rota não encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}
