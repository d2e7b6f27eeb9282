package master

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/remonte/internal/audit"
	"github.com/BruksfildServices01/remonte/internal/db/dbtest"
	"github.com/BruksfildServices01/remonte/internal/httperr"
	"github.com/BruksfildServices01/remonte/internal/imaging"
	"github.com/BruksfildServices01/remonte/internal/infra/objectstore"
	"github.com/BruksfildServices01/remonte/internal/infra/repository"
	"github.com/BruksfildServices01/remonte/internal/models"
)

func TestStatistics_EmptyStore(t *testing.T) {
	db := dbtest.Open(t)
	uc := NewStatistics(repository.NewMasterGormRepository(db))

	stats, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.Total != 0 || stats.BySpeciality == nil || len(stats.BySpeciality) != 0 {
		t.Fatalf("expected empty statistics, got %+v", stats)
	}
}

func TestMatchProfessionals_ReturnsBothSets(t *testing.T) {
	db := dbtest.Open(t)
	fx := dbtest.Fixture{DB: db}

	electrician := fx.Speciality(t, "Электрик")
	plumber := fx.Speciality(t, "Сантехник")

	good := fx.Master(t, "Иван", electrician, 5)
	tainted := fx.Master(t, "Пётр", electrician, 4.5)
	fx.Order(t, 1, fx.Client(t, "Анна", "anna@gmail.com"), tainted, 10)
	fx.Master(t, "Олег", plumber, 4)

	uc := NewMatchProfessionals(repository.NewMasterGormRepository(db))
	sets, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("match: %v", err)
	}

	a := sets["electricians_and_painters"]
	if len(a) != 1 || a[0].ID != good.ID {
		t.Fatalf("unexpected set A %+v", a)
	}

	b, ok := sets["plumbers_and_carpenters"]
	if !ok || b == nil || len(b) != 0 {
		t.Fatalf("expected empty non-nil set B, got %+v", b)
	}
}

func pngPhoto(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 30))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return &buf
}

func TestUploadPhoto_StoresWebpAndUpdatesMaster(t *testing.T) {
	db := dbtest.Open(t)
	fx := dbtest.Fixture{DB: db}
	m := fx.Master(t, "Иван", fx.Speciality(t, "Маляр"), 4)

	repo := repository.NewMasterGormRepository(db)
	storage := objectstore.NewMemoryStorage("http://cdn.local")
	dispatcher := audit.NewDispatcher(audit.New(db), zap.NewNop())
	t.Cleanup(dispatcher.Close)

	uc := NewUploadPhoto(repo, imaging.NewNormalizer(), storage, dispatcher)
	got, err := uc.Execute(context.Background(), m.ID, pngPhoto(t))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if !strings.HasPrefix(got.Image, "http://cdn.local/masters/") || !strings.HasSuffix(got.Image, ".webp") {
		t.Fatalf("unexpected image url %q", got.Image)
	}

	key := strings.TrimPrefix(got.Image, "http://cdn.local/")
	obj, ok := storage.Object(key)
	if !ok || obj.ContentType != imaging.ContentType {
		t.Fatalf("object %s not stored as webp", key)
	}

	stored, err := repo.Get(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Image != got.Image {
		t.Fatalf("image url not persisted, got %q", stored.Image)
	}
}

// racingStorage calls during before storing the object.
type racingStorage struct {
	*objectstore.MemoryStorage
	during func()
}

func (s racingStorage) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	s.during()
	return s.MemoryStorage.Put(ctx, key, body, contentType)
}

func TestUploadPhoto_KeepsConcurrentEdits(t *testing.T) {
	db := dbtest.Open(t)
	fx := dbtest.Fixture{DB: db}
	m := fx.Master(t, "Иван", fx.Speciality(t, "Маляр"), 4)

	repo := repository.NewMasterGormRepository(db)
	storage := racingStorage{
		MemoryStorage: objectstore.NewMemoryStorage("http://cdn.local"),
		during: func() {
			if _, err := repo.Modify(context.Background(), m.ID, func(cur *models.Master) error {
				cur.Rating = 5
				return nil
			}); err != nil {
				t.Errorf("modify: %v", err)
			}
		},
	}

	uc := NewUploadPhoto(repo, imaging.NewNormalizer(), storage, nil)
	got, err := uc.Execute(context.Background(), m.ID, pngPhoto(t))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if got.Rating != 5 || got.Image == "" {
		t.Fatalf("expected rating 5 and an image, got %+v", got)
	}
}

func TestUploadPhoto_RejectsGarbage(t *testing.T) {
	db := dbtest.Open(t)
	fx := dbtest.Fixture{DB: db}
	m := fx.Master(t, "Иван", fx.Speciality(t, "Маляр"), 4)

	dispatcher := audit.NewDispatcher(audit.New(db), zap.NewNop())
	t.Cleanup(dispatcher.Close)

	uc := NewUploadPhoto(
		repository.NewMasterGormRepository(db),
		imaging.NewNormalizer(),
		objectstore.NewMemoryStorage("http://cdn.local"),
		dispatcher,
	)

	_, err := uc.Execute(context.Background(), m.ID, strings.NewReader("not an image"))
	var fe httperr.FieldError
	if !errors.As(err, &fe) || fe.Field != "image" {
		t.Fatalf("expected image FieldError, got %v", err)
	}
}

func TestUploadPhoto_DisabledStorage(t *testing.T) {
	db := dbtest.Open(t)
	uc := NewUploadPhoto(repository.NewMasterGormRepository(db), imaging.NewNormalizer(), nil, nil)

	_, err := uc.Execute(context.Background(), 1, strings.NewReader(""))
	if !httperr.IsBusiness(err, "image_storage_disabled") {
		t.Fatalf("expected image_storage_disabled, got %v", err)
	}
}
