package main

import (
	"log"
	"os"

	"github.com/mxidsoft/ine-ocr-service/client"
	"github.com/mxidsoft/ine-ocr-service/config"
	"github.com/mxidsoft/ine-ocr-service/handler"
	"github.com/mxidsoft/ine-ocr-service/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Tesseract v5 reads the data path from the environment as well
	os.Setenv("TESSDATA_PREFIX", cfg.TesseractDataPath)
	log.Println("TESSDATA_PREFIX set to:", os.Getenv("TESSDATA_PREFIX"))

	// Initialize OCR clients: PaddleOCR worker primary, Tesseract fallback
	paddleClient := client.NewPaddleClient(cfg.PaddleModelDir, cfg.PaddleLang)
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	credentialService := service.NewCredentialService(paddleClient, tesseractClient, pdfProcessor, cfg.OCRTimeout)

	// Initialize handler layer
	credentialHandler := handler.NewCredentialHandler(credentialService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "INE OCR Extraction",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		ine := api.Group("/ine")
		{
			ine.POST("/extract", credentialHandler.ExtractFront)
			ine.POST("/split-name", credentialHandler.SplitName)
		}
	}

	// Start server
	log.Printf("Starting INE OCR Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
