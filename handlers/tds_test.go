package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"leanchems/testhelpers"
)

func TestHandleTdsList_GroupsByChemical(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	chemical := testhelpers.CreateTestChemical(t, app, "Sodium Benzoate")
	testhelpers.CreateTestTds(t, app, chemical.Id, "Wuhan Youji", "Food Grade")
	testhelpers.CreateTestTds(t, app, "", "Orphan Brand", "Tech Grade")

	req := httptest.NewRequest(http.MethodGet, "/tds", nil)
	rec := httptest.NewRecorder()

	if err := HandleTdsList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Sodium Benzoate",
		"Wuhan Youji",
		"Orphan Brand",
	)
}

func TestHandleTdsSave_RequiresBrand(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := postForm("/tds", url.Values{})
	rec := httptest.NewRecorder()

	if err := HandleTdsSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Header().Get("HX-Redirect") != "" {
		t.Error("expected no redirect on validation failure")
	}
}

func TestHandleTdsSave_CreatesLinkedDocument(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	chemical := testhelpers.CreateTestChemical(t, app, "Sodium Benzoate")

	form := url.Values{}
	form.Set("brand", "Wuhan Youji")
	form.Set("grade", "Food Grade")
	form.Set("chemical_type", chemical.Id)

	req := postForm("/tds", form)
	rec := httptest.NewRecorder()

	if err := HandleTdsSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	saved, err := app.FindFirstRecordByData("tds", "brand", "Wuhan Youji")
	if err != nil {
		t.Fatalf("tds was not saved: %v", err)
	}
	if saved.GetString("chemical_type") != chemical.Id {
		t.Errorf("expected tds linked to chemical %s, got %q", chemical.Id, saved.GetString("chemical_type"))
	}
}
