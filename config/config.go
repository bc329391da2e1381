package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	PaddleModelDir    string
	PaddleLang        string
	OCRTimeout        time.Duration
	MaxFileSize       int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata/"
	}

	paddleModelDir := os.Getenv("PADDLE_OCR_MODEL_DIR")
	if paddleModelDir == "" {
		paddleModelDir = "/opt/paddleocr/models/es"
	}

	paddleLang := os.Getenv("PADDLE_OCR_LANG")
	if paddleLang == "" {
		paddleLang = "es"
	}

	timeoutSeconds := 30
	if v := os.Getenv("OCR_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeoutSeconds = n
		}
	}

	return &Config{
		ServerPort:        serverPort,
		TesseractDataPath: tesseractDataPath,
		PaddleModelDir:    paddleModelDir,
		PaddleLang:        paddleLang,
		OCRTimeout:        time.Duration(timeoutSeconds) * time.Second,
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
	}
}
