package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"leanchems/testhelpers"
)

func TestHandlePartnerSave_CreatesPartner(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("name", "Wuhan Youji Industries")
	form.Set("country", "China")

	req := postForm("/partners", form)
	rec := httptest.NewRecorder()

	if err := HandlePartnerSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/partners")

	if _, err := app.FindFirstRecordByData("partners", "name", "Wuhan Youji Industries"); err != nil {
		t.Fatalf("partner was not saved: %v", err)
	}
}

func TestHandlePartnerSave_RequiresName(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := postForm("/partners", url.Values{})
	rec := httptest.NewRecorder()

	if err := HandlePartnerSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Header().Get("HX-Redirect") != "" {
		t.Error("expected no redirect on validation failure")
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Partner name is required")
}

func TestHandlePartnerList_RendersPartners(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPartner(t, app, "Wuhan Youji Industries")
	testhelpers.CreateTestPartner(t, app, "Galaxy Surfactants")

	req := httptest.NewRequest(http.MethodGet, "/partners", nil)
	rec := httptest.NewRecorder()

	if err := HandlePartnerList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Wuhan Youji Industries",
		"Galaxy Surfactants",
	)
}
