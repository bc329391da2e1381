package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"
)

// ErrOCRTimeout reports that the OCR worker did not finish before the
// configured deadline and was terminated. Handlers map it to a distinct
// "unclear image" outcome, separate from other OCR failures.
var ErrOCRTimeout = errors.New("OCR timed out (worker terminated)")

// PaddleClient runs PaddleOCR in a child Python process, one per call.
// The process boundary is what makes the timeout discipline real: when the
// context deadline expires the worker is killed outright instead of being
// waited on, so a hung recognition cannot stall other requests.
type PaddleClient struct {
	modelDir string
	lang     string
}

// NewPaddleClient creates a PaddleOCR client for the given model directory
// and language.
func NewPaddleClient(modelDir, lang string) *PaddleClient {
	log.Printf("PaddleOCR client initialized (model dir: %s, lang: %s)", modelDir, lang)
	return &PaddleClient{
		modelDir: modelDir,
		lang:     lang,
	}
}

// RecognizeLines performs OCR on the image at imagePath and returns the
// recognized text lines in reading order. ctx bounds the whole worker
// process; on deadline expiry the process is killed and ErrOCRTimeout is
// returned.
func (p *PaddleClient) RecognizeLines(ctx context.Context, imagePath string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "python3", "-c", fmt.Sprintf(`
import warnings
warnings.filterwarnings('ignore')
from paddleocr import PaddleOCR

ocr = PaddleOCR(
    use_doc_orientation_classify=False,
    use_doc_unwarping=False,
    use_textline_orientation=False,
    lang='%s',
)

result = ocr.predict('%s')
texts = result[0]["rec_texts"] if result else []
for t in texts:
    print(t)
`, p.lang, imagePath))
	// Give the killed process a moment to release the pipe, then move on.
	cmd.WaitDelay = 2 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, ErrOCRTimeout
	}
	if err != nil {
		return nil, fmt.Errorf("PaddleOCR worker failed: %v, stderr: %s", err, stderr.String())
	}

	var lines []string
	for _, line := range strings.Split(stdout.String(), "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
