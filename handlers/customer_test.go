package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"leanchems/testhelpers"
)

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return req
}

func TestHandleCustomerSave_CreatesCustomer(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("customer_name", "Addis Beverages PLC")
	form.Set("profile", "Large beverage bottler in Addis Ababa.")

	req := postForm("/customers", form)
	rec := httptest.NewRecorder()

	err := HandleCustomerSave(app)(newTestRequestEvent(app, req, rec))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/customers")

	saved, err := app.FindFirstRecordByData("customers", "customer_name", "Addis Beverages PLC")
	if err != nil {
		t.Fatalf("customer was not saved: %v", err)
	}
	if saved.GetString("sales_stage") != "Lead ID" {
		t.Errorf("expected new customer at Lead ID, got %q", saved.GetString("sales_stage"))
	}
	displayID := saved.GetString("display_id")
	if !strings.HasPrefix(displayID, "LC-") || !strings.Contains(displayID, "-CUST-") {
		t.Errorf("unexpected display id %q", displayID)
	}
}

func TestHandleCustomerSave_RequiresName(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{}
	form.Set("customer_name", "   ")

	req := postForm("/customers", form)
	rec := httptest.NewRecorder()

	if err := HandleCustomerSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Header().Get("HX-Redirect") != "" {
		t.Error("expected no redirect on validation failure")
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Customer name is required")
}

func TestHandleCustomerSave_RejectsDuplicateName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCustomer(t, app, "Addis Beverages PLC")

	form := url.Values{}
	form.Set("customer_name", "Addis Beverages PLC")

	req := postForm("/customers", form)
	rec := httptest.NewRecorder()

	if err := HandleCustomerSave(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Header().Get("HX-Redirect") != "" {
		t.Error("expected no redirect for duplicate name")
	}
}

func TestHandleCustomerList_RendersCustomers(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCustomer(t, app, "Addis Beverages PLC")
	testhelpers.CreateTestCustomer(t, app, "Nairobi Foods Ltd")

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	rec := httptest.NewRecorder()

	if err := HandleCustomerList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Addis Beverages PLC",
		"Nairobi Foods Ltd",
	)
}

func TestHandleCustomerView_CleansStoredProfile(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Addis Beverages PLC")

	// written directly to storage, as the external profile worker does
	customer.Set("profile", "## Ideal Customer\n**Large bottlers** in East Africa\n* Beverage industry")
	if err := app.Save(customer); err != nil {
		t.Fatalf("failed to update customer: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/customers/"+customer.Id, nil)
	req.SetPathValue("id", customer.Id)
	rec := httptest.NewRecorder()

	if err := HandleCustomerView(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"Ideal Customer",
		"Large bottlers",
		"• Beverage industry",
	)
	if strings.Contains(body, "**Large bottlers**") || strings.Contains(body, "## Ideal Customer") {
		t.Error("expected markdown markers to be stripped from the rendered profile")
	}
}

func TestHandleCustomerDelete_RemovesCustomer(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Addis Beverages PLC")

	req := httptest.NewRequest(http.MethodDelete, "/customers/"+customer.Id, nil)
	req.SetPathValue("id", customer.Id)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	if err := HandleCustomerDelete(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if _, err := app.FindRecordById("customers", customer.Id); err == nil {
		t.Error("expected customer to be deleted")
	}
}
