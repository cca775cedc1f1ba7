package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EltonLopezzs/onbarbearia/internal/audit"
	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/service"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/infra/storage"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type UploadServiceImageInput struct {
	BarbershopID uint
	ServiceID    uint
	File         io.Reader
}

type UploadServiceImage struct {
	repo     domain.Repository
	images   storage.ImageStore
	audit    *audit.Dispatcher
	log      *zap.Logger
	maxWidth int
}

func NewUploadServiceImage(
	repo domain.Repository,
	images storage.ImageStore,
	audit *audit.Dispatcher,
	log *zap.Logger,
	maxWidth int,
) *UploadServiceImage {
	return &UploadServiceImage{
		repo:     repo,
		images:   images,
		audit:    audit,
		log:      log,
		maxWidth: maxWidth,
	}
}

func (uc *UploadServiceImage) Execute(
	ctx context.Context,
	actor auth.Context,
	in UploadServiceImageInput,
) (*models.Service, error) {

	shopID, err := actor.ManagedBarbershop(in.BarbershopID)
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.Get(ctx, shopID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	data, err := storage.ToWebP(in.File, uc.maxWidth)
	if errors.Is(err, storage.ErrImageTooLarge) {
		return nil, httperr.ErrValidation("imagem maior que 5MB")
	}
	if errors.Is(err, storage.ErrImageTooManyPixels) {
		return nil, httperr.ErrValidation("imagem com resolução acima de 40 megapixels")
	}
	if err != nil {
		return nil, httperr.ErrValidation("arquivo de imagem inválido")
	}

	key := fmt.Sprintf("barbershops/%d/services/%d/%s.webp", shopID, svc.ID, uuid.NewString())
	url, err := uc.images.Put(ctx, key, storage.WebPContentType, data)
	if err != nil {
		return nil, err
	}

	previousKey := svc.ImageKey
	svc.ImageURL = url
	svc.ImageKey = key
	if err := uc.repo.Update(ctx, svc); err != nil {
		// não deixa objeto órfão no bucket
		if derr := uc.images.Delete(ctx, key); derr != nil {
			uc.log.Warn("orphan image cleanup failed", zap.String("key", key), zap.Error(derr))
		}
		return nil, err
	}

	if previousKey != "" && previousKey != key {
		if derr := uc.images.Delete(ctx, previousKey); derr != nil {
			uc.log.Warn("previous image cleanup failed", zap.String("key", previousKey), zap.Error(derr))
		}
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shopID,
		UserID:       &actor.UserID,
		Action:       "service_image_updated",
		Entity:       "service",
		EntityID:     &svc.ID,
		Metadata:     map[string]any{"key": key},
	})

	return svc, nil
}
