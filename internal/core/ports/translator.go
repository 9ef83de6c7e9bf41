package ports

import (
	"context"
	"io"

	"go.trai.ch/predex/internal/core/domain"
)

// Translator invokes the external tool that converts class files to dex.
//
//go:generate mockgen -source=translator.go -destination=mocks/mock_translator.go -package=mocks
type Translator interface {
	// Translate converts inputs into a single dex jar at output.
	// Tool output is streamed to log. A non-zero exit code is reported as an error.
	Translate(ctx context.Context, inputs []string, opts domain.DxOptions, output string, log io.Writer) error
}
