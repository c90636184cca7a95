package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"simpupuk/entities"
	"simpupuk/pkg/realisasi/repository"
)

func repoUji(t *testing.T) repository.RealisasiRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.Realisasi{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return New(db)
}

func TestRealisasiRentangTanggal(t *testing.T) {
	r := repoUji(t)

	min, max, err := r.RentangTanggal()
	if err != nil {
		t.Fatalf("rentang on empty: %v", err)
	}
	if min != "" || max != "" {
		t.Errorf("empty store should give empty range, got %q..%q", min, max)
	}

	if err := r.BulkInsert([]entities.Realisasi{
		{Kategori: entities.KategoriTM, KodeKebun: "TJM", Tanggal: "2024-06-03"},
		{Kategori: entities.KategoriTM, KodeKebun: "TJM", Tanggal: "2024-05-28"},
		{Kategori: entities.KategoriTBM, KodeKebun: "SPA", Tanggal: "2024-06-10"},
	}); err != nil {
		t.Fatalf("bulk insert: %v", err)
	}

	min, max, err = r.RentangTanggal()
	if err != nil {
		t.Fatalf("rentang: %v", err)
	}
	if min != "2024-05-28" || max != "2024-06-10" {
		t.Errorf("rentang = %q..%q, want 2024-05-28..2024-06-10", min, max)
	}
}

func TestRealisasiListOrderedByTanggal(t *testing.T) {
	r := repoUji(t)
	if err := r.BulkInsert([]entities.Realisasi{
		{Kategori: entities.KategoriTM, KodeKebun: "TJM", Tanggal: "2024-06-03"},
		{Kategori: entities.KategoriTM, KodeKebun: "SPA", Tanggal: "2024-05-28"},
	}); err != nil {
		t.Fatalf("bulk insert: %v", err)
	}
	rows, err := r.List("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 || rows[0].Tanggal != "2024-05-28" {
		t.Errorf("list not date-ordered: %+v", rows)
	}
}
