package services_test

import (
	"context"
	"testing"

	"github.com/worthyderby/derbyslips/internal/errors"
	"github.com/worthyderby/derbyslips/internal/logger"
	"github.com/worthyderby/derbyslips/internal/models"
	"github.com/worthyderby/derbyslips/internal/services"
	"github.com/worthyderby/derbyslips/internal/testutil"
)

func setupRosterTest(t *testing.T) (*services.RosterService, *models.Event) {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	log := logger.New()

	eventSvc := services.NewEventService(log, repo)
	event, err := eventSvc.CreateEvent(context.Background(), "Test Derby", "2026-03-14")
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	return services.NewRosterService(log, repo), event
}

func TestRosterService_AddCategory(t *testing.T) {
	svc, event := setupRosterTest(t)
	ctx := context.Background()

	updated, err := svc.AddCategory(ctx, event.ID, "  Speed  ")
	if err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
	if len(updated.Categories) != 1 || updated.Categories[0] != "Speed" {
		t.Errorf("categories = %v, want trimmed [Speed]", updated.Categories)
	}
}

func TestRosterService_AddCategory_EmptyName(t *testing.T) {
	svc, event := setupRosterTest(t)

	_, err := svc.AddCategory(context.Background(), event.ID, "   ")
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if kind := kindOf(t, err); kind != errors.ErrValidation {
		t.Errorf("error kind = %v, want validation", kind)
	}
}

func TestRosterService_AddCategory_UnknownEvent(t *testing.T) {
	svc, _ := setupRosterTest(t)

	_, err := svc.AddCategory(context.Background(), "ghost", "Speed")
	if err == nil {
		t.Fatal("expected not found error, got nil")
	}
	if kind := kindOf(t, err); kind != errors.ErrNotFound {
		t.Errorf("error kind = %v, want not found", kind)
	}
}

func TestRosterService_RenameCategory_Conflict(t *testing.T) {
	svc, event := setupRosterTest(t)
	ctx := context.Background()

	for _, name := range []string{"Speed", "Design"} {
		if _, err := svc.AddCategory(ctx, event.ID, name); err != nil {
			t.Fatalf("AddCategory failed: %v", err)
		}
	}

	_, err := svc.RenameCategory(ctx, event.ID, "Design", "Speed")
	if err == nil {
		t.Fatal("expected conflict error, got nil")
	}
	if kind := kindOf(t, err); kind != errors.ErrConflict {
		t.Errorf("error kind = %v, want conflict", kind)
	}
}

func TestRosterService_RemoveCategory_PersistsCascade(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	log := logger.New()
	eventSvc := services.NewEventService(log, repo)
	rosterSvc := services.NewRosterService(log, repo)
	slipSvc := services.NewSlipService(log, repo)
	ctx := context.Background()

	event, err := eventSvc.CreateEvent(ctx, "Test Derby", "2026-03-14")
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	for _, name := range []string{"Speed", "Design"} {
		if _, err := rosterSvc.AddCategory(ctx, event.ID, name); err != nil {
			t.Fatalf("AddCategory failed: %v", err)
		}
	}
	if _, err := rosterSvc.AddCarRange(ctx, event.ID, 1, 3); err != nil {
		t.Fatalf("AddCarRange failed: %v", err)
	}

	// One slip that only votes Design, one that votes both
	if _, err := slipSvc.AddSlip(ctx, event.ID, []models.Vote{{Category: "Design", CarNumber: 1}}); err != nil {
		t.Fatalf("AddSlip failed: %v", err)
	}
	if _, err := slipSvc.AddSlip(ctx, event.ID, []models.Vote{
		{Category: "Speed", CarNumber: 2},
		{Category: "Design", CarNumber: 2},
	}); err != nil {
		t.Fatalf("AddSlip failed: %v", err)
	}

	updated, err := rosterSvc.RemoveCategory(ctx, event.ID, "Design")
	if err != nil {
		t.Fatalf("RemoveCategory failed: %v", err)
	}
	if len(updated.Slips) != 1 {
		t.Fatalf("expected the Design-only slip dropped, got %d slips", len(updated.Slips))
	}

	// The cascade survived persistence, not just the returned value
	slips, err := slipSvc.GetSlips(ctx, event.ID)
	if err != nil {
		t.Fatalf("GetSlips failed: %v", err)
	}
	if len(slips) != 1 || len(slips[0].Votes) != 1 || slips[0].Votes[0].Category != "Speed" {
		t.Errorf("persisted slips = %+v, want single Speed vote", slips)
	}
}

func TestRosterService_AddCarRange_InvertedIsNoOp(t *testing.T) {
	svc, event := setupRosterTest(t)
	ctx := context.Background()

	if _, err := svc.AddCarRange(ctx, event.ID, 1, 3); err != nil {
		t.Fatalf("AddCarRange failed: %v", err)
	}
	updated, err := svc.AddCarRange(ctx, event.ID, 9, 4)
	if err != nil {
		t.Fatalf("inverted range should not error: %v", err)
	}
	if len(updated.CarNames) != 3 {
		t.Errorf("cars = %d, want original 3", len(updated.CarNames))
	}
}

func TestRosterService_RenameCar_TrimsOnCommit(t *testing.T) {
	svc, event := setupRosterTest(t)
	ctx := context.Background()

	if _, err := svc.AddCarRange(ctx, event.ID, 1, 1); err != nil {
		t.Fatalf("AddCarRange failed: %v", err)
	}
	updated, err := svc.RenameCar(ctx, event.ID, 1, "  Red Rocket  ")
	if err != nil {
		t.Fatalf("RenameCar failed: %v", err)
	}
	if updated.CarNames[1] != "Red Rocket" {
		t.Errorf("car name = %q, want trimmed Red Rocket", updated.CarNames[1])
	}
}

func TestRosterService_ClearAllCars(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	log := logger.New()
	eventSvc := services.NewEventService(log, repo)
	rosterSvc := services.NewRosterService(log, repo)
	slipSvc := services.NewSlipService(log, repo)
	ctx := context.Background()

	event, err := eventSvc.CreateEvent(ctx, "Test Derby", "2026-03-14")
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if _, err := rosterSvc.AddCategory(ctx, event.ID, "Speed"); err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
	if _, err := rosterSvc.AddCarRange(ctx, event.ID, 1, 3); err != nil {
		t.Fatalf("AddCarRange failed: %v", err)
	}
	if _, err := slipSvc.AddSlip(ctx, event.ID, []models.Vote{{Category: "Speed", CarNumber: 1}}); err != nil {
		t.Fatalf("AddSlip failed: %v", err)
	}

	updated, err := rosterSvc.ClearAllCars(ctx, event.ID)
	if err != nil {
		t.Fatalf("ClearAllCars failed: %v", err)
	}
	if len(updated.CarNames) != 0 {
		t.Errorf("roster = %v, want empty", updated.CarNames)
	}
	if len(updated.Slips) != 0 {
		t.Errorf("slips = %d, want 0 after clear", len(updated.Slips))
	}
	// Categories survive the clear
	if len(updated.Categories) != 1 {
		t.Errorf("categories = %v, want untouched", updated.Categories)
	}
}
