package master

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/remonte/internal/audit"
	domain "github.com/BruksfildServices01/remonte/internal/domain/master"
	"github.com/BruksfildServices01/remonte/internal/httperr"
	"github.com/BruksfildServices01/remonte/internal/imaging"
	"github.com/BruksfildServices01/remonte/internal/infra/objectstore"
	"github.com/BruksfildServices01/remonte/internal/models"
)

type UploadPhoto struct {
	repo    domain.Repository
	images  *imaging.Normalizer
	storage objectstore.Storage
	audit   *audit.Dispatcher
}

// NewUploadPhoto accepts a nil storage; uploads then fail with image_storage_disabled.
func NewUploadPhoto(
	repo domain.Repository,
	images *imaging.Normalizer,
	storage objectstore.Storage,
	audit *audit.Dispatcher,
) *UploadPhoto {
	return &UploadPhoto{
		repo:    repo,
		images:  images,
		storage: storage,
		audit:   audit,
	}
}

func (uc *UploadPhoto) Execute(
	ctx context.Context,
	masterID uint,
	photo io.Reader,
) (*models.Master, error) {

	if uc.storage == nil {
		return nil, httperr.ErrBusiness("image_storage_disabled")
	}

	m, err := uc.repo.Get(ctx, masterID)
	if err != nil {
		return nil, err
	}

	body, err := uc.images.Normalize(photo)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupported) {
			return nil, httperr.InvalidField("image", "upload a valid jpeg, png or webp image")
		}
		return nil, err
	}

	key := fmt.Sprintf("masters/%d/%s%s", m.ID, uuid.NewString(), imaging.Extension)
	url, err := uc.storage.Put(ctx, key, body, imaging.ContentType)
	if err != nil {
		return nil, err
	}

	m, err = uc.repo.Modify(ctx, m.ID, func(current *models.Master) error {
		current.Image = url
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "master_image_uploaded",
		Entity:   "master",
		EntityID: &m.ID,
		Metadata: map[string]string{"key": key},
	})

	return m, nil
}
