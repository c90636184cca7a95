package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"simpupuk/entities"
	"simpupuk/pkg/rencana/repository"
)

func repoUji(t *testing.T) repository.RencanaRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.Rencana{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return New(db)
}

func TestRencanaCRUD(t *testing.T) {
	r := repoUji(t)

	e := &entities.Rencana{Kategori: entities.KategoriTM, KodeKebun: "TJM", JenisPupuk: "UREA", JumlahKg: 100}
	if err := r.Create(e); err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.ID == 0 {
		t.Fatal("create did not assign id")
	}

	got, err := r.FindByID(e.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.KodeKebun != "TJM" || got.JumlahKg != 100 {
		t.Errorf("found wrong row: %+v", got)
	}

	got.JumlahKg = 250
	if err := r.Update(got); err != nil {
		t.Fatalf("update: %v", err)
	}
	lagi, _ := r.FindByID(e.ID)
	if lagi.JumlahKg != 250 {
		t.Errorf("update not persisted: %v", lagi.JumlahKg)
	}

	if err := r.Delete(e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.FindByID(e.ID); err == nil {
		t.Error("deleted row still found")
	}
}

func TestRencanaListFilterKategori(t *testing.T) {
	r := repoUji(t)
	err := r.BulkInsert([]entities.Rencana{
		{Kategori: entities.KategoriTM, KodeKebun: "TJM", AplikasiKe: 2},
		{Kategori: entities.KategoriTM, KodeKebun: "TJM", AplikasiKe: 1},
		{Kategori: entities.KategoriTBM, KodeKebun: "SPA", AplikasiKe: 1},
	})
	if err != nil {
		t.Fatalf("bulk insert: %v", err)
	}

	tm, err := r.List(entities.KategoriTM)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tm) != 2 {
		t.Fatalf("list TM = %d rows, want 2", len(tm))
	}
	if tm[0].AplikasiKe != 1 || tm[1].AplikasiKe != 2 {
		t.Errorf("list not ordered by aplikasi_ke: %d, %d", tm[0].AplikasiKe, tm[1].AplikasiKe)
	}

	semua, _ := r.List("")
	if len(semua) != 3 {
		t.Errorf("list all = %d rows, want 3", len(semua))
	}
}

func TestRencanaDeleteByKebunAndAll(t *testing.T) {
	r := repoUji(t)
	if err := r.BulkInsert([]entities.Rencana{
		{Kategori: entities.KategoriTM, KodeKebun: "TJM"},
		{Kategori: entities.KategoriTM, KodeKebun: "TJM"},
		{Kategori: entities.KategoriTM, KodeKebun: "SPA"},
	}); err != nil {
		t.Fatalf("bulk insert: %v", err)
	}

	if err := r.DeleteByKebun("TJM"); err != nil {
		t.Fatalf("delete by kebun: %v", err)
	}
	sisa, _ := r.List("")
	if len(sisa) != 1 || sisa[0].KodeKebun != "SPA" {
		t.Fatalf("after DeleteByKebun: %+v", sisa)
	}

	if err := r.DeleteAll(); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	kosong, _ := r.List("")
	if len(kosong) != 0 {
		t.Errorf("after DeleteAll: %d rows left", len(kosong))
	}
}

func TestRencanaBulkInsertEmpty(t *testing.T) {
	r := repoUji(t)
	if err := r.BulkInsert(nil); err != nil {
		t.Fatalf("empty bulk insert should be a no-op, got %v", err)
	}
}
