package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"simpupuk/entities"
	"simpupuk/pkg/stok/repository"
)

func repoUji(t *testing.T) repository.StokRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.Stok{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return New(db)
}

func TestStokTotalPerKebun(t *testing.T) {
	r := repoUji(t)
	for _, s := range []entities.Stok{
		{KodeKebun: "TJM", JumlahKg: 1000},
		{KodeKebun: "TJM", JumlahKg: 500},
		{KodeKebun: "SPA", JumlahKg: 200},
	} {
		s := s
		if err := r.Create(&s); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	tot, err := r.TotalPerKebun()
	if err != nil {
		t.Fatalf("total per kebun: %v", err)
	}
	if tot["TJM"] != 1500 {
		t.Errorf("TJM total = %v, want 1500", tot["TJM"])
	}
	if tot["SPA"] != 200 {
		t.Errorf("SPA total = %v, want 200", tot["SPA"])
	}
	if len(tot) != 2 {
		t.Errorf("total map has %d keys, want 2", len(tot))
	}
}

func TestStokDeleteByKebun(t *testing.T) {
	r := repoUji(t)
	a := entities.Stok{KodeKebun: "TJM", JumlahKg: 10}
	b := entities.Stok{KodeKebun: "SPA", JumlahKg: 20}
	if err := r.Create(&a); err != nil {
		t.Fatal(err)
	}
	if err := r.Create(&b); err != nil {
		t.Fatal(err)
	}

	if err := r.DeleteByKebun("TJM"); err != nil {
		t.Fatalf("delete by kebun: %v", err)
	}
	sisa, _ := r.List()
	if len(sisa) != 1 || sisa[0].KodeKebun != "SPA" {
		t.Fatalf("after DeleteByKebun: %+v", sisa)
	}

	if err := r.DeleteAll(); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if kosong, _ := r.List(); len(kosong) != 0 {
		t.Errorf("after DeleteAll: %d rows left", len(kosong))
	}
}
