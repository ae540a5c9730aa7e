package usecase

import (
	"context"
	"errors"
	"testing"

	"restoration_billing/internal/domain/entities"
	"restoration_billing/internal/domain/estimate"
	mock_interfaces "restoration_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sectionContent(title string) EstimateContent {
	return EstimateContent{
		Title: title,
		Sections: []entities.Section{
			{
				Title:        "Kitchen",
				ShowSubtotal: true,
				Items: []entities.LineItem{
					{Name: "Drywall", Quantity: 10, Unit: "SF", UnitPrice: 2.5, Taxable: true},
					{Name: "Paint", Quantity: 2, Unit: "GAL", UnitPrice: 30, Taxable: false},
				},
			},
		},
		OPPercent: 10,
		TaxMethod: entities.TaxMethodPercentage,
		TaxRate:   10,
	}
}

func TestEstimateDocumentUseCase_Create(t *testing.T) {
	t.Run("invalid title", func(t *testing.T) {
		uc := NewEstimateDocumentUseCase(nil)
		_, err := uc.Create(context.Background(), EstimateContent{Title: "   "})
		if !errors.Is(err, ErrInvalidEstimateTitle) {
			t.Fatalf("expected ErrInvalidEstimateTitle, got %v", err)
		}
	})

	t.Run("invalid item rejects whole create", func(t *testing.T) {
		uc := NewEstimateDocumentUseCase(nil)
		content := sectionContent("Water Loss - 123 Main St")
		content.Sections[0].Items[0].Quantity = 0
		_, err := uc.Create(context.Background(), content)
		if !errors.Is(err, estimate.ErrItemQuantityInvalid) {
			t.Fatalf("expected ErrItemQuantityInvalid, got %v", err)
		}
	})

	t.Run("invalid tax method", func(t *testing.T) {
		uc := NewEstimateDocumentUseCase(nil)
		content := sectionContent("T")
		content.TaxMethod = "vat"
		_, err := uc.Create(context.Background(), content)
		if !errors.Is(err, estimate.ErrInvalidTaxMethod) {
			t.Fatalf("expected ErrInvalidTaxMethod, got %v", err)
		}
	})

	t.Run("create success recomputes totals server-side", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateDocumentRepository(ctrl)
		uc := NewEstimateDocumentUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.EstimateDocument{})).DoAndReturn(
			func(_ context.Context, doc entities.EstimateDocument) (entities.EstimateDocument, error) {
				if doc.ID == "" || doc.Status != entities.DocumentStatusDraft {
					t.Fatalf("unexpected identity/status: %+v", doc)
				}
				if doc.CreatedAt.IsZero() || doc.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				// 25 taxable + 60 non-taxable, O&P 8.5, taxable O&P
				// share 8.5*25/85 = 2.5, tax (25+2.5)*10% = 2.75.
				if doc.Subtotal != 85 || doc.OPAmount != 8.5 || doc.TaxAmount != 2.75 || doc.TotalAmount != 96.25 {
					t.Fatalf("unexpected totals: %+v", doc)
				}
				if len(doc.Sections) != 1 || len(doc.Items) != 2 {
					t.Fatalf("unexpected structure: %+v", doc)
				}
				for _, it := range doc.Items {
					if it.ID.Pending() {
						t.Fatalf("save must mint placeholder ids: %+v", it)
					}
					if it.PrimaryGroup != "Kitchen" {
						t.Fatalf("primary_group not synced: %+v", it)
					}
				}
				return doc, nil
			},
		)

		doc, err := uc.Create(context.Background(), sectionContent("  Water Loss  "))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Title != "Water Loss" {
			t.Fatalf("title not trimmed: %q", doc.Title)
		}
	})

	t.Run("flat items grouped by primary_group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateDocumentRepository(ctrl)
		uc := NewEstimateDocumentUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, doc entities.EstimateDocument) (entities.EstimateDocument, error) {
				if len(doc.Sections) != 2 {
					t.Fatalf("expected 2 grouped sections, got %+v", doc.Sections)
				}
				if doc.Sections[0].Title != estimate.DefaultSectionTitle || doc.Sections[1].Title != "Roof" {
					t.Fatalf("unexpected grouping: %+v", doc.Sections)
				}
				return doc, nil
			},
		)

		_, err := uc.Create(context.Background(), EstimateContent{
			Title: "Flat",
			Items: []entities.LineItem{
				{Name: "A", Quantity: 1, Unit: "EA", UnitPrice: 10, Taxable: true},
				{Name: "B", Quantity: 1, Unit: "EA", UnitPrice: 5, Taxable: true, PrimaryGroup: "Roof"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateDocumentUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateDocumentUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateDocumentRepository(ctrl)
		uc := NewEstimateDocumentUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.EstimateDocument{}, nil)

		_, err := uc.GetByID(context.Background(), "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateDocumentRepository(ctrl)
		uc := NewEstimateDocumentUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.EstimateDocument{ID: "est-1"}, nil)

		doc, err := uc.GetByID(context.Background(), " est-1 ")
		if err != nil || doc.ID != "est-1" {
			t.Fatalf("unexpected result: %+v, %v", doc, err)
		}
	})

	t.Run("stale stored figures are rehydrated on read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateDocumentRepository(ctrl)
		uc := NewEstimateDocumentUseCase(repo)

		stored := entities.EstimateDocument{
			ID:     "est-1",
			Title:  "Water Loss",
			Status: entities.DocumentStatusSent,
			Sections: []entities.Section{
				{
					Title:    "Kitchen",
					Subtotal: 999,
					Items: []entities.LineItem{
						{ID: entities.NewItemID("item-1"), Name: "Drywall", Quantity: 10, Unit: "SF", UnitPrice: 2.5, Total: 777, Taxable: true, PrimaryGroup: "Old"},
					},
				},
			},
			OPPercent:   10,
			TaxMethod:   entities.TaxMethodPercentage,
			TaxRate:     10,
			Subtotal:    999,
			TotalAmount: 999,
		}
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(stored, nil)

		doc, err := uc.GetByID(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.ID != "est-1" || doc.Status != entities.DocumentStatusSent {
			t.Fatalf("identity/status must survive rehydration: %+v", doc)
		}
		// 25 taxable subtotal, O&P 2.5 all taxable, tax (25+2.5)*10% = 2.75.
		if doc.Subtotal != 25 || doc.OPAmount != 2.5 || doc.TaxAmount != 2.75 || doc.TotalAmount != 30.25 {
			t.Fatalf("stale totals not recomputed: %+v", doc)
		}
		sec := doc.Sections[0]
		if sec.ID == "" {
			t.Fatalf("section without id must get a fresh one")
		}
		if sec.Subtotal != 25 || sec.Items[0].Total != 25 {
			t.Fatalf("stale section figures not recomputed: %+v", sec)
		}
		if len(doc.Items) != 1 || doc.Items[0].PrimaryGroup != "Kitchen" {
			t.Fatalf("flat list not rebuilt from containment: %+v", doc.Items)
		}
		if doc.Items[0].ID.String() != "item-1" {
			t.Fatalf("item identity must survive: %+v", doc.Items[0])
		}
	})
}

func TestEstimateDocumentUseCase_ReplaceContent(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateDocumentRepository(ctrl)
		uc := NewEstimateDocumentUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.EstimateDocument{}, nil)

		_, err := uc.ReplaceContent(context.Background(), "est-1", sectionContent("T"))
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("preserves identity and status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateDocumentRepository(ctrl)
		uc := NewEstimateDocumentUseCase(repo)

		existing := entities.EstimateDocument{ID: "est-1", Status: entities.DocumentStatusSent}
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(existing, nil)
		repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, doc entities.EstimateDocument) (entities.EstimateDocument, error) {
				if doc.ID != "est-1" || doc.Status != entities.DocumentStatusSent {
					t.Fatalf("identity/status must survive replace: %+v", doc)
				}
				if doc.Subtotal != 85 {
					t.Fatalf("totals not recomputed: %+v", doc)
				}
				return doc, nil
			},
		)

		_, err := uc.ReplaceContent(context.Background(), "est-1", sectionContent("T"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateDocumentUseCase_StatusFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *EstimateDocumentUseCase, ctx context.Context, id string) (entities.EstimateDocument, error)
		status entities.DocumentStatus
	}{
		{name: "send", call: (*EstimateDocumentUseCase).SendByID, status: entities.DocumentStatusSent},
		{name: "approve", call: (*EstimateDocumentUseCase).ApproveByID, status: entities.DocumentStatusApproved},
		{name: "decline", call: (*EstimateDocumentUseCase).DeclineByID, status: entities.DocumentStatusDeclined},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := NewEstimateDocumentUseCase(nil)
			_, err := tc.call(uc, context.Background(), "")
			if !errors.Is(err, ErrInvalidEstimateID) {
				t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
			}
		})

		t.Run(tc.name+" repo error", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIEstimateDocumentRepository(ctrl)
			uc := NewEstimateDocumentUseCase(repo)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "est-1", tc.status).Return(entities.EstimateDocument{}, errors.New("db"))

			_, err := tc.call(uc, context.Background(), "est-1")
			if err == nil || err.Error() != "db" {
				t.Fatalf("expected db error, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIEstimateDocumentRepository(ctrl)
			uc := NewEstimateDocumentUseCase(repo)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "est-1", tc.status).Return(entities.EstimateDocument{}, nil)

			_, err := tc.call(uc, context.Background(), "est-1")
			if !errors.Is(err, ErrEstimateNotFound) {
				t.Fatalf("expected ErrEstimateNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIEstimateDocumentRepository(ctrl)
			uc := NewEstimateDocumentUseCase(repo)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "est-1", tc.status).Return(entities.EstimateDocument{ID: "est-1", Status: tc.status}, nil)

			doc, err := tc.call(uc, context.Background(), " est-1 ")
			if err != nil || doc.Status != tc.status {
				t.Fatalf("unexpected result: %+v, %v", doc, err)
			}
		})
	}
}

func TestEstimateDocumentUseCase_DeleteByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateDocumentUseCase(nil)
		if err := uc.DeleteByID(context.Background(), ""); !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateDocumentRepository(ctrl)
		uc := NewEstimateDocumentUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.EstimateDocument{}, nil)

		if err := uc.DeleteByID(context.Background(), "est-1"); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateDocumentRepository(ctrl)
		uc := NewEstimateDocumentUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.EstimateDocument{ID: "est-1"}, nil)
		repo.EXPECT().DeleteByID(gomock.Any(), "est-1").Return(nil)

		if err := uc.DeleteByID(context.Background(), "est-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
