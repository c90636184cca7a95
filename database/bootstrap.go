package database

import (
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"simpupuk/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// run the PK migration BEFORE AutoMigrate so GORM doesn't try a failing
	// ALTER TABLE on databases created by early builds
	if err := migrateStoksAddPK(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Rencana{},
		&entities.Realisasi{},
		&entities.Stok{},
		&entities.PedomanDoc{},
		&entities.PedomanChunk{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateStoksAddPK rebuilds stoks if it lacks a primary key on id. Early
// databases were created from a raw CREATE TABLE without one.
func migrateStoksAddPK(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='stoks'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type colInfo struct {
		Cid     int
		Name    string
		Type    string
		NotNull int
		Pk      int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(stoks)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}

	for _, c := range cols {
		if strings.EqualFold(c.Name, "id") {
			if c.Pk == 1 {
				return nil
			}
			break
		}
	}

	oldCols := map[string]bool{}
	for _, c := range cols {
		oldCols[strings.ToLower(c.Name)] = true
	}
	sel := func(name string) string {
		if oldCols[name] {
			return name
		}
		return "NULL AS " + name
	}
	createSQL := `
CREATE TABLE stoks_new (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    kode_kebun TEXT,
    kode_intern TEXT,
    jumlah_kg REAL,
    created_at DATETIME
);
`
	copySQL := fmt.Sprintf(`
INSERT INTO stoks_new (kode_kebun, kode_intern, jumlah_kg, created_at)
SELECT %s, %s, %s, %s FROM stoks;
`,
		sel("kode_kebun"),
		sel("kode_intern"),
		sel("jumlah_kg"),
		sel("created_at"),
	)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`PRAGMA foreign_keys=OFF`).Error; err != nil {
			return err
		}
		if err := tx.Exec(createSQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DROP TABLE stoks`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`ALTER TABLE stoks_new RENAME TO stoks`).Error; err != nil {
			return err
		}
		return tx.Exec(`PRAGMA foreign_keys=ON`).Error
	})
}
