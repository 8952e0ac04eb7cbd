package supacamel_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/supabase-community/postgrest-go"

	"github.com/supacamel/supacamel"
)

type testUser struct {
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
	IsActive bool   `json:"isActive"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *supacamel.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return supacamel.New(postgrest.NewClient(srv.URL, "", nil))
}

func TestChainingConvertsColumns(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	db := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	_, _, err := db.From("users").
		Select("userId,userName", "", false).
		Eq("userId", "1").
		Gt("createdAt", "2020-01-01").
		Order("updatedAt", nil).
		Limit(10, "").
		Execute()
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/users" {
		t.Errorf("path = %q, want /users", gotPath)
	}
	if got := gotQuery.Get("select"); got != "user_id,user_name" {
		t.Errorf("select = %q, want user_id,user_name", got)
	}
	if got := gotQuery.Get("user_id"); got != "eq.1" {
		t.Errorf("user_id = %q, want eq.1", got)
	}
	if got := gotQuery.Get("created_at"); got != "gt.2020-01-01" {
		t.Errorf("created_at = %q, want gt.2020-01-01", got)
	}
	if got := gotQuery.Get("order"); !strings.Contains(got, "updated_at") {
		t.Errorf("order = %q, want it to reference updated_at", got)
	}
	if got := gotQuery.Get("limit"); got != "10" {
		t.Errorf("limit = %q, want 10", got)
	}
}

func TestExecuteConvertsResultKeys(t *testing.T) {
	db := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"user_id":"1","is_active":true,"profile_data":{"avatar_url":"x"}}]`)
	})

	data, _, err := db.From("users").Select("*", "", false).Execute()
	if err != nil {
		t.Fatal(err)
	}
	var got []map[string]interface{}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	want := []map[string]interface{}{{
		"userId":   "1",
		"isActive": true,
		"profileData": map[string]interface{}{
			"avatarUrl": "x",
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestExecuteToBindsCamelTags(t *testing.T) {
	db := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"user_id":"1","user_name":"Ann","is_active":true}]`)
	})

	var users []testUser
	if _, err := db.From("users").Select("*", "", false).ExecuteTo(&users); err != nil {
		t.Fatal(err)
	}
	want := []testUser{{UserId: "1", UserName: "Ann", IsActive: true}}
	if diff := cmp.Diff(want, users); diff != "" {
		t.Errorf("decoded rows mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertConvertsPayloadAndResult(t *testing.T) {
	var gotMethod string
	var gotBody map[string]interface{}
	db := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `[{"user_id":"9","user_name":"Ann","is_active":true}]`)
	})

	var rows []testUser
	_, err := db.From("users").
		Insert(map[string]interface{}{"userName": "Ann", "isActive": true}, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		t.Fatal(err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	wantBody := map[string]interface{}{"user_name": "Ann", "is_active": true}
	if diff := cmp.Diff(wantBody, gotBody); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
	wantRows := []testUser{{UserId: "9", UserName: "Ann", IsActive: true}}
	if diff := cmp.Diff(wantRows, rows); diff != "" {
		t.Errorf("resolved rows mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateMatchConvertsKeys(t *testing.T) {
	var gotMethod string
	var gotQuery url.Values
	var gotBody map[string]interface{}
	db := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.Query()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	_, _, err := db.From("users").
		Update(map[string]interface{}{"isActive": false}, "", "").
		Match(map[string]string{"userId": "9"}).
		Execute()
	if err != nil {
		t.Fatal(err)
	}

	if gotMethod != http.MethodPatch {
		t.Errorf("method = %q, want PATCH", gotMethod)
	}
	if got := gotQuery.Get("user_id"); got != "eq.9" {
		t.Errorf("user_id = %q, want eq.9", got)
	}
	wantBody := map[string]interface{}{"is_active": false}
	if diff := cmp.Diff(wantBody, gotBody); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

// Errors and counts reported by the wrapped client must be observable
// unchanged, so run the same failing request through a bare postgrest-go
// client and through the wrapper and compare.
func TestErrorPassThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"message":"boom","code":"XX000"}`)
	}))
	t.Cleanup(srv.Close)

	raw := postgrest.NewClient(srv.URL, "", nil)
	db := supacamel.New(postgrest.NewClient(srv.URL, "", nil))

	_, rawCount, rawErr := raw.From("users").Select("*", "", false).Execute()
	_, count, err := db.From("users").Select("*", "", false).Execute()

	if rawErr == nil || err == nil {
		t.Fatalf("expected both calls to fail, got raw=%v wrapped=%v", rawErr, err)
	}
	if err.Error() != rawErr.Error() {
		t.Errorf("wrapped error = %q, want %q", err, rawErr)
	}
	if count != rawCount {
		t.Errorf("wrapped count = %d, want %d", count, rawCount)
	}
}

func TestFilterChainReturnsSameBuilder(t *testing.T) {
	db := supacamel.New(postgrest.NewClient("http://localhost", "", nil))
	fb := db.From("users").Select("*", "", false)
	if fb.Eq("userId", "1") != fb {
		t.Error("Eq must return the same builder")
	}
	if fb.Order("createdAt", nil) != fb {
		t.Error("Order must return the same builder")
	}
	if fb.Not("isActive", "eq", "true").Limit(1, "") != fb {
		t.Error("chained calls must return the same builder")
	}
}

func TestNilClient(t *testing.T) {
	db := supacamel.New(nil)
	_, _, err := db.From("users").Select("*", "", false).Eq("userId", "1").Execute()
	if !errors.Is(err, supacamel.ErrNoClient) {
		t.Errorf("err = %v, want ErrNoClient", err)
	}
	if _, err := db.From("users").Select("*", "", false).ExecuteTo(&struct{}{}); !errors.Is(err, supacamel.ErrNoClient) {
		t.Errorf("ExecuteTo err = %v, want ErrNoClient", err)
	}
}

func TestBadPayloadSurfacesAtExecute(t *testing.T) {
	var requests int
	db := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	_, _, err := db.From("users").Insert("not json", false, "", "", "").Execute()
	if err == nil {
		t.Error("expected invalid payload to surface at the terminal call")
	}
	if requests != 0 {
		t.Errorf("got %d requests, want none for an invalid payload", requests)
	}

	// the failure belongs to that one chain; the same Client must keep
	// serving later queries untouched
	if _, _, err := db.From("users").Select("*", "", false).Execute(); err != nil {
		t.Errorf("follow-up query failed: %v", err)
	}
	if _, _, err := db.From("users").Insert(map[string]interface{}{"userName": "Ann"}, false, "", "", "").Execute(); err != nil {
		t.Errorf("follow-up insert failed: %v", err)
	}
	if requests != 2 {
		t.Errorf("got %d follow-up requests, want 2", requests)
	}
}
