package main

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/iho/gobalance/internal/domain"
	"github.com/iho/gobalance/internal/usecase/mocks"
)

func TestLoadReferenceData(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockChartRepository(ctrl)

	chart := domain.NewChart("-", []domain.Account{{Number: "1", Name: "Assets"}})
	sectors := domain.NewSectorTree(nil)
	subledgers := domain.SubledgerMap{1: {ID: 1, Number: "90000001", Name: "ACME"}}

	repo.EXPECT().LoadChart(gomock.Any()).Return(chart, nil)
	repo.EXPECT().LoadSectors(gomock.Any()).Return(sectors, nil)
	repo.EXPECT().LoadSubledgerAccounts(gomock.Any()).Return(subledgers, nil)

	refData, err := loadReferenceData(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refData.Chart != chart || refData.Sectors != sectors {
		t.Fatal("reference data not wired through")
	}
	if refData.Subledgers.Parse(1).Name != "ACME" {
		t.Fatal("subledger directory not wired through")
	}
}

func TestLoadReferenceDataChartError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockChartRepository(ctrl)

	loadErr := errors.New("relation does not exist")
	repo.EXPECT().LoadChart(gomock.Any()).Return(nil, loadErr)

	if _, err := loadReferenceData(context.Background(), repo); !errors.Is(err, loadErr) {
		t.Fatalf("expected load error to surface, got %v", err)
	}
}
