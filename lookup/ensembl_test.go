package lookup

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestParseEnsemblAlleles(t *testing.T) {
	body := `{"mappings":[{"seq_region_name":"1","start":100,"allele_string":"A/C/G"}]}`

	rec, err := ParseEnsembl("rs1", []byte(body))
	if err != nil {
		t.Fatal(err)
	}

	if !rec.RefAllele.Valid || rec.RefAllele.String != "A" {
		t.Errorf("Expected ref A, got %+v", rec.RefAllele)
	}
	if expected := []string{"C", "G"}; !reflect.DeepEqual(rec.AltAlleles, expected) {
		t.Errorf("Expected alts %v, got %v", expected, rec.AltAlleles)
	}
	if rec.Source != EnsemblName {
		t.Errorf("Unexpected source %q", rec.Source)
	}
}

func TestParseEnsemblFirstMapping(t *testing.T) {
	body := `{"mappings":[
		{"seq_region_name":"chr19","start":45411941,"allele_string":"T/C"},
		{"seq_region_name":"HSCHR19_1_CTG3","start":1,"allele_string":"T/C"}
	]}`

	rec, err := ParseEnsembl("rs429358", []byte(body))
	if err != nil {
		t.Fatal(err)
	}

	if rec.Chromosome.String != "19" || rec.Position.Int64 != 45411941 {
		t.Errorf("Unexpected locus %+v", rec)
	}
}

func TestParseEnsemblRefOnly(t *testing.T) {
	rec, err := ParseEnsembl("rs1", []byte(`{"mappings":[{"seq_region_name":"1","start":100,"allele_string":"A"}]}`))
	if err != nil {
		t.Fatal(err)
	}

	if rec.RefAllele.String != "A" || len(rec.AltAlleles) != 0 {
		t.Errorf("Unexpected alleles %+v", rec)
	}

	rec, err = ParseEnsembl("rs1", []byte(`{"mappings":[{"seq_region_name":"1","start":100}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if rec.RefAllele.Valid {
		t.Errorf("Expected no ref allele, got %+v", rec.RefAllele)
	}
}

func TestParseEnsemblPartial(t *testing.T) {
	for _, body := range []string{
		`{"mappings":[]}`,
		`{"mappings":[{"seq_region_name":"1","allele_string":"A/C"}]}`,
		`{"mappings":[{"start":100,"allele_string":"A/C"}]}`,
		`{"error":"rs1 not found"}`,
	} {
		rec, err := ParseEnsembl("rs1", []byte(body))
		if !errors.Is(err, ErrNotFound) || rec != nil {
			t.Errorf("%s: expected ErrNotFound and no record, got %+v, %v", body, rec, err)
		}
	}
}

func TestEnsemblLookup(t *testing.T) {
	up, srv := newUpstream(t)
	up.ensembl["rs429358"] = reply{body: rs429358Ensembl}

	ens := NewEnsembl(srv.URL, srv.Client())

	rec, err := ens.Lookup(context.Background(), "rs429358")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Chromosome.String != "19" || rec.Position.Int64 != 45411941 || rec.RefAllele.String != "T" {
		t.Errorf("Unexpected record %+v", rec)
	}

	req := up.request(0)
	if req.URL.Path != "/variation/human/rs429358" {
		t.Errorf("Unexpected path %s", req.URL.Path)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Unexpected Content-Type %q", got)
	}

	if _, err := ens.Lookup(context.Background(), "rs7412"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for an unknown rsID, got %v", err)
	}
}

func TestEnsemblLookupMalformedBody(t *testing.T) {
	up, srv := newUpstream(t)
	up.ensembl["rs429358"] = reply{body: `<html>maintenance</html>`}

	ens := NewEnsembl(srv.URL, srv.Client())

	rec, err := ens.Lookup(context.Background(), "rs429358")
	if !isTransport(err) || rec != nil {
		t.Errorf("Expected a TransportError and no record, got %+v, %v", rec, err)
	}
}
