package payment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientCreateTransaction(t *testing.T) {
	var gotPath string
	var gotBody createIntentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]string{
				"transactionId": "txn_9",
				"clientSecret":  "cs_9",
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	res, err := client.CreateTransaction(162, TransactionMetadata{ProductID: "p1", Title: "Backend Package"})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	if gotPath != "/api/auth/create-payment-intent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody.Amount != 162 || gotBody.ProductID != "p1" || gotBody.Title != "Backend Package" {
		t.Errorf("request body = %+v", gotBody)
	}
	if res.TransactionID != "txn_9" || res.ClientSecret != "cs_9" {
		t.Errorf("result = %+v", res)
	}
}

func TestClientCreateTransactionBusinessFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "amount below minimum",
		})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).CreateTransaction(1, TransactionMetadata{})
	if err == nil {
		t.Fatal("success=false should surface as an error")
	}
}

func TestClientConfirmStatusMapping(t *testing.T) {
	tests := []struct {
		status string
		reason string
		want   ConfirmStatus
	}{
		{"succeeded", "", ConfirmSucceeded},
		{"card_declined", "insufficient funds", ConfirmDeclined},
		{"validation_error", "bad postal code", ConfirmDeclined},
		{"requires_action", "", ConfirmRequiresAction},
		{"processing", "", ConfirmOther},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"success": true,
					"data":    map[string]string{"status": tt.status, "reason": tt.reason},
				})
			}))
			defer server.Close()

			res, err := NewClient(server.URL).ConfirmTransaction("cs_9")
			if err != nil {
				t.Fatalf("ConfirmTransaction: %v", err)
			}
			if res.Status != tt.want {
				t.Errorf("status = %v, want %v", res.Status, tt.want)
			}
			if tt.want == ConfirmDeclined && res.Reason != tt.reason {
				t.Errorf("reason = %q, want %q", res.Reason, tt.reason)
			}
			if tt.want == ConfirmOther && res.RawStatus != tt.status {
				t.Errorf("raw status = %q, want %q", res.RawStatus, tt.status)
			}
		})
	}
}

func TestClientCancelTransaction(t *testing.T) {
	var gotBody cancelRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	if err := NewClient(server.URL).CancelTransaction("txn_9"); err != nil {
		t.Fatalf("CancelTransaction: %v", err)
	}
	if gotBody.TransactionID != "txn_9" {
		t.Errorf("transactionId = %q", gotBody.TransactionID)
	}
}

func TestClientUnexpectedStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	if err := NewClient(server.URL).CancelTransaction("txn_9"); err == nil {
		t.Fatal("non-200 response should surface as an error")
	}
}
