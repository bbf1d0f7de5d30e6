package jobs

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/goto/folio/core/importer"
	"github.com/goto/folio/pkg/log"
)

//go:generate mockery --name=importService --exported --with-expecter
type importService interface {
	Import(context.Context, importer.ImportRequest) (*importer.ImportResult, error)
}

type handler struct {
	logger        log.Logger
	importService importService
	validator     *validator.Validate
}

func NewHandler(
	logger log.Logger,
	importService importService,
	validator *validator.Validate,
) *handler {
	return &handler{
		logger:        logger,
		importService: importService,
		validator:     validator,
	}
}
