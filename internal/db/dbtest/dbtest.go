// Package dbtest opens migrated in-memory sqlite databases for tests.
package dbtest

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/remonte/internal/db"
	"github.com/BruksfildServices01/remonte/internal/models"
)

func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), dbpkg.GormConfig())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

// Fixture seeds the rows most tests start from.
type Fixture struct {
	DB *gorm.DB
}

func (f Fixture) Speciality(t *testing.T, name string) models.Speciality {
	t.Helper()
	s := models.Speciality{Name: name}
	if err := f.DB.Create(&s).Error; err != nil {
		t.Fatalf("seed speciality: %v", err)
	}
	return s
}

func (f Fixture) Client(t *testing.T, name, email string) models.Client {
	t.Helper()
	c := models.Client{FullName: name, Email: email}
	if err := f.DB.Create(&c).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return c
}

func (f Fixture) Master(t *testing.T, name string, speciality models.Speciality, rating float64) models.Master {
	t.Helper()
	m := models.Master{FullName: name, SpecialityID: speciality.ID, Rating: rating}
	if err := f.DB.Omit("Speciality").Create(&m).Error; err != nil {
		t.Fatalf("seed master: %v", err)
	}
	return m
}

func (f Fixture) Order(t *testing.T, number int, client models.Client, master models.Master, price float64) models.Order {
	t.Helper()
	o := models.Order{Number: number, ClientID: client.ID, MasterID: master.ID, Price: price}
	if err := f.DB.Omit("Client", "Master").Create(&o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}

func (f Fixture) Review(t *testing.T, client models.Client, master models.Master, rating float64) models.Review {
	t.Helper()
	r := models.Review{ClientID: client.ID, MasterID: master.ID, Rating: rating, Comment: "ok"}
	if err := f.DB.Omit("Client", "Master").Create(&r).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}
	return r
}
