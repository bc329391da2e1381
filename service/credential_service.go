package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mxidsoft/ine-ocr-service/client"
	"github.com/mxidsoft/ine-ocr-service/dto"
	"github.com/mxidsoft/ine-ocr-service/utils"
)

// OCRClient is the OCR collaborator boundary: a bitmap file in, recognized
// text lines in reading order out.
type OCRClient interface {
	RecognizeLines(ctx context.Context, imagePath string) ([]string, error)
}

// CredentialService orchestrates front-side extraction: input decoding,
// image enhancement, the QR fast-path, bounded OCR and the field engine.
// It holds no per-request state; concurrent use is safe.
type CredentialService struct {
	ocrClient    OCRClient
	fallbackOCR  OCRClient
	pdfProcessor PDFProcessor
	ocrTimeout   time.Duration
}

// NewCredentialService creates a CredentialService. fallbackOCR may be nil.
func NewCredentialService(ocrClient, fallbackOCR OCRClient, pdfProcessor PDFProcessor, ocrTimeout time.Duration) *CredentialService {
	return &CredentialService{
		ocrClient:    ocrClient,
		fallbackOCR:  fallbackOCR,
		pdfProcessor: pdfProcessor,
		ocrTimeout:   ocrTimeout,
	}
}

// ExtractFront extracts the front-side fields from an uploaded credential
// scan. Only input decoding and total OCR failure produce errors; a field
// the engine cannot recover is just an empty string in the response.
func (s *CredentialService) ExtractFront(ctx context.Context, fileData []byte, mimeType string, debug bool) (*dto.ExtractResponse, error) {
	var lines []string
	var img image.Image

	if strings.Contains(mimeType, "pdf") {
		log.Println("Processing PDF credential scan")
		// A text layer beats OCR every time it exists.
		if textLines, err := s.pdfProcessor.ExtractLines(fileData); err == nil && len(textLines) >= 4 {
			log.Printf("PDF text layer found (%d lines), skipping OCR", len(textLines))
			lines = textLines
		} else {
			pageImg, err := s.pdfProcessor.ExtractFirstImage(fileData)
			if err != nil {
				return nil, fmt.Errorf("failed to extract page image from PDF: %w", err)
			}
			img = pageImg
		}
	} else {
		decoded, _, err := image.Decode(bytes.NewReader(fileData))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		img = decoded
	}

	if img != nil {
		// Modern credentials carry a QR whose payload embeds the CURP and
		// clave verbatim; harvested tokens go ahead of the OCR lines so the
		// identifier locator sees clean text first.
		if payload, err := DecodeQRPayload(img); err == nil && payload != "" {
			log.Printf("QR payload decoded (%d bytes)", len(payload))
			lines = append(lines, strings.ToUpper(payload))
		}

		ocrLines, err := s.recognize(ctx, EnhanceImage(img))
		if err != nil {
			return nil, err
		}
		lines = append(lines, ocrLines...)
	}

	fields := utils.ExtractFields(lines)

	resp := &dto.ExtractResponse{CredentialFields: fields}
	if debug {
		resp.OCRTexts = utils.NormalizeLines(lines)
		resp.TipoDetectado = fields.TipoCredencial
	}
	return resp, nil
}

// SplitName augments an extracted field map with the three name parts and,
// when the postal code was redundantly embedded there, a cleaned colonia.
// nombre, curp and clave_elector are required inputs.
func (s *CredentialService) SplitName(fields map[string]string) (map[string]string, error) {
	for _, key := range []string{"nombre", "curp", "clave_elector"} {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("%w: %s", dto.ErrMissingField, key)
		}
	}

	split := utils.SplitName(fields["nombre"], fields["curp"])

	out := make(map[string]string, len(fields)+3)
	for k, v := range fields {
		out[k] = v
	}
	out["apellido_paterno"] = split.Paterno
	out["apellido_materno"] = split.Materno
	out["nombres"] = split.Nombres

	if colonia, ok := fields["colonia"]; ok {
		if cleaned := utils.StripPostalCode(colonia, fields["codigo_postal"]); cleaned != colonia {
			out["colonia"] = cleaned
		}
	}

	return out, nil
}

// recognize runs OCR on the prepared image with the configured deadline.
// The fallback engine is tried only on non-timeout failure: a deadline that
// already expired once is not worth spending again.
func (s *CredentialService) recognize(ctx context.Context, img image.Image) ([]string, error) {
	imagePath, err := saveTempImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to save temp image: %w", err)
	}
	defer os.Remove(imagePath)

	ocrCtx, cancel := context.WithTimeout(ctx, s.ocrTimeout)
	defer cancel()

	lines, err := s.ocrClient.RecognizeLines(ocrCtx, imagePath)
	if err == nil {
		return lines, nil
	}
	if errors.Is(err, client.ErrOCRTimeout) {
		return nil, err
	}

	if s.fallbackOCR == nil {
		return nil, fmt.Errorf("OCR extraction failed: %w", err)
	}
	log.Printf("Primary OCR failed: %v. Falling back to Tesseract...", err)

	fbCtx, fbCancel := context.WithTimeout(ctx, s.ocrTimeout)
	defer fbCancel()

	lines, err = s.fallbackOCR.RecognizeLines(fbCtx, imagePath)
	if err != nil {
		if errors.Is(err, client.ErrOCRTimeout) {
			return nil, err
		}
		return nil, fmt.Errorf("OCR extraction failed: %w", err)
	}
	return lines, nil
}

// saveTempImage writes the image to a temporary PNG for engines that read
// from disk.
func saveTempImage(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "ine-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return tempFile.Name(), nil
}
