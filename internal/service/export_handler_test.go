package service

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/mmynk/aidledger/internal/export"
	pb "github.com/mmynk/aidledger/pkg/proto"
)

func TestExportDistributionCSV(t *testing.T) {
	s := setupTestServer(t)
	rana := s.createIndividual(t, "Rana", "Khoury", "North")

	created, err := s.Distributions.CreateDistribution(context.Background(), staff(&pb.CreateDistributionRequest{
		Distribution: foodInput("30"),
		Recipients: []*pb.RecipientInput{
			{Ref: rana.Id, Quantity: 2},
			{Ref: "walkin_1", Name: "Sara", Quantity: 1},
		},
	}))
	if err != nil {
		t.Fatalf("CreateDistribution failed: %v", err)
	}

	resp, err := http.Get(s.URL + "/distributions/" + created.Msg.Id + "/export.csv")
	if err != nil {
		t.Fatalf("GET export failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != export.ContentType {
		t.Errorf("expected content type %q, got %q", export.ContentType, ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "distribution_2024-03-01_food.csv") {
		t.Errorf("unexpected content disposition %q", cd)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	want := export.BOM + strings.Join([]string{
		`"Name","Reference","District","Type","Quantity","Value","Notes"`,
		`"Rana Khoury","` + rana.Id + `","North","Individual","2","20.00",""`,
		`"Sara","","","Walk-in","1","10.00",""`,
	}, "\n")
	if string(body) != want {
		t.Errorf("unexpected CSV:\n%s\nwant:\n%s", body, want)
	}
}

func TestExportDistributionNotFound(t *testing.T) {
	s := setupTestServer(t)

	resp, err := http.Get(s.URL + "/distributions/00000000-0000-0000-0000-000000000000/export.csv")
	if err != nil {
		t.Fatalf("GET export failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestExportIndividualsCSV(t *testing.T) {
	s := setupTestServer(t)
	s.createIndividual(t, "Rana", "Khoury", "North")
	s.createIndividual(t, "Sami", "Aziz", "South")

	resp, err := http.Get(s.URL + "/individuals/export.csv?district=South")
	if err != nil {
		t.Fatalf("GET export failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	lines := strings.Split(strings.TrimPrefix(string(body), export.BOM), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], `"Sami","Aziz",`) {
		t.Errorf("unexpected row %q", lines[1])
	}
}
