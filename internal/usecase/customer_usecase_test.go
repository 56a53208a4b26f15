package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"business_manager/internal/domain/entities"
	mock_interfaces "business_manager/internal/usecase/interfaces/mocks"
)

type customerFixture struct {
	uc        *CustomerUseCase
	customers *mock_interfaces.MockICustomerRepository
	documents *mock_interfaces.MockIDocumentRepository
}

func newCustomerFixture(t *testing.T) customerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	f := customerFixture{
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		documents: mock_interfaces.NewMockIDocumentRepository(ctrl),
	}
	f.uc = NewCustomerUseCase(f.customers, f.documents, zerolog.Nop())
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func TestCustomerUseCase_Create(t *testing.T) {
	f := newCustomerFixture(t)

	if _, err := f.uc.Create(context.Background(), entities.CustomerProfile{Name: " "}); !errors.Is(err, ErrInvalidCustomerName) {
		t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
	}

	f.customers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error) {
		return c, nil
	})
	got, err := f.uc.Create(context.Background(), entities.CustomerProfile{ID: "ignored", Name: " Acme ", Email: " a@acme.test "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == "" || got.ID == "ignored" || got.Name != "Acme" || got.Email != "a@acme.test" {
		t.Fatalf("unexpected customer: %+v", got)
	}
	if !got.CreatedAt.Equal(fixedNow) || !got.UpdatedAt.Equal(fixedNow) {
		t.Fatalf("expected timestamps to be set: %+v", got)
	}
}

func TestCustomerUseCase_Update(t *testing.T) {
	created := fixedNow.AddDate(0, -1, 0)

	t.Run("success", func(t *testing.T) {
		f := newCustomerFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.CustomerProfile{ID: "c-1", Name: "Acme", CreatedAt: created}, nil)
		f.customers.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.CustomerProfile) (entities.CustomerProfile, error) {
			return c, nil
		})

		got, err := f.uc.Update(context.Background(), "c-1", entities.CustomerProfile{Name: "Acme Corp", Phone: "555"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "c-1" || got.Name != "Acme Corp" || !got.CreatedAt.Equal(created) || !got.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected customer: %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newCustomerFixture(t)
		f.customers.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.CustomerProfile{}, nil)
		if _, err := f.uc.Update(context.Background(), "c-9", entities.CustomerProfile{Name: "x"}); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		f := newCustomerFixture(t)
		if _, err := f.uc.Update(context.Background(), "", entities.CustomerProfile{Name: "x"}); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})
}

func TestCustomerUseCase_List(t *testing.T) {
	all := []entities.CustomerProfile{
		{ID: "c-1", Name: "Acme", Email: "ops@acme.test", CreatedAt: fixedNow.Add(-2 * time.Hour)},
		{ID: "c-2", Name: "Globex", Phone: "555-0101", CreatedAt: fixedNow},
		{ID: "c-3", Name: "Initech", Email: "bill@initech.test", CreatedAt: fixedNow.Add(-time.Hour)},
	}
	cases := []struct {
		search string
		want   []string
	}{
		{search: "", want: []string{"c-2", "c-3", "c-1"}},
		{search: "ACME", want: []string{"c-1"}},
		{search: "initech.test", want: []string{"c-3"}},
		{search: "0101", want: []string{"c-2"}},
		{search: "nobody", want: []string{}},
	}
	for _, tc := range cases {
		f := newCustomerFixture(t)
		f.customers.EXPECT().List(gomock.Any()).Return(all, nil)

		got, err := f.uc.List(context.Background(), tc.search)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids := make([]string, 0, len(got))
		for _, c := range got {
			ids = append(ids, c.ID)
		}
		if len(ids) != len(tc.want) {
			t.Fatalf("search %q: expected %v, got %v", tc.search, tc.want, ids)
		}
		for i := range ids {
			if ids[i] != tc.want[i] {
				t.Fatalf("search %q: expected %v, got %v", tc.search, tc.want, ids)
			}
		}
	}
}

func TestCustomerUseCase_DeleteRemovesDocuments(t *testing.T) {
	f := newCustomerFixture(t)
	f.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.CustomerProfile{ID: "c-1", Name: "Acme"}, nil)

	mine := entities.Customer{ID: "c-1", Name: "Acme"}
	other := entities.Customer{ID: "c-2", Name: "Globex"}
	f.documents.EXPECT().ListByKind(gomock.Any(), entities.DocumentKindQuote).Return([]entities.Document{
		{ID: "q-1", Customer: mine}, {ID: "q-2", Customer: other},
	}, nil)
	f.documents.EXPECT().ListByKind(gomock.Any(), entities.DocumentKindInvoice).Return([]entities.Document{
		{ID: "i-1", Customer: mine},
	}, nil)
	f.documents.EXPECT().ListByKind(gomock.Any(), entities.DocumentKindProposal).Return(nil, nil)
	f.documents.EXPECT().Delete(gomock.Any(), "q-1").Return(true, nil)
	f.documents.EXPECT().Delete(gomock.Any(), "i-1").Return(true, nil)
	f.customers.EXPECT().Delete(gomock.Any(), "c-1").Return(true, nil)

	removed, err := f.uc.Delete(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 documents removed, got %d", removed)
	}
}

func TestCustomerUseCase_DeleteStopsOnDocumentError(t *testing.T) {
	f := newCustomerFixture(t)
	f.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.CustomerProfile{ID: "c-1"}, nil)
	f.documents.EXPECT().ListByKind(gomock.Any(), entities.DocumentKindQuote).Return([]entities.Document{
		{ID: "q-1", Customer: entities.Customer{ID: "c-1"}},
	}, nil)
	f.documents.EXPECT().Delete(gomock.Any(), "q-1").Return(false, errors.New("throttled"))

	if _, err := f.uc.Delete(context.Background(), "c-1"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestCustomerUseCase_DeleteMissing(t *testing.T) {
	f := newCustomerFixture(t)
	f.customers.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.CustomerProfile{}, nil)

	if _, err := f.uc.Delete(context.Background(), "c-9"); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
