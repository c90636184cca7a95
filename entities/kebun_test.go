package entities

import "testing"

func TestKebunByKode(t *testing.T) {
	k, ok := KebunByKode(" tjm ")
	if !ok {
		t.Fatal("TJM should resolve")
	}
	if k.Distrik != DistrikDTM || k.KodeIntern != "101" {
		t.Errorf("TJM resolved wrong: %+v", k)
	}
	if _, ok := KebunByKode("XXX"); ok {
		t.Error("XXX should not resolve")
	}
}

func TestMasterKebunOrder(t *testing.T) {
	// district blocks must be contiguous, DTM first
	terlihatDBR := false
	for _, k := range MasterKebun {
		switch k.Distrik {
		case DistrikDBR:
			terlihatDBR = true
		case DistrikDTM:
			if terlihatDBR {
				t.Fatalf("DTM kebun %s after DBR block", k.Kode)
			}
		default:
			t.Fatalf("kebun %s has unknown distrik %q", k.Kode, k.Distrik)
		}
	}

	kode := map[string]bool{}
	intern := map[string]bool{}
	for _, k := range MasterKebun {
		if kode[k.Kode] || intern[k.KodeIntern] {
			t.Fatalf("duplicate kebun %s / %s", k.Kode, k.KodeIntern)
		}
		kode[k.Kode] = true
		intern[k.KodeIntern] = true
	}
}

func TestUrutanKebun(t *testing.T) {
	if got := UrutanKebun("TJM"); got != 0 {
		t.Errorf("UrutanKebun(TJM) = %d, want 0", got)
	}
	if got := UrutanKebun("srg"); got != len(MasterKebun)-1 {
		t.Errorf("UrutanKebun(srg) = %d, want %d", got, len(MasterKebun)-1)
	}
	if got := UrutanKebun("ZZZ"); got != -1 {
		t.Errorf("UrutanKebun(ZZZ) = %d, want -1", got)
	}
}
