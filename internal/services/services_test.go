package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nitgconnect/backend/internal/identity"
	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/store"
)

func decode(t *testing.T, body string, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), dst); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
}

func TestLostFoundCreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewLostFoundService(store.NewMemoryStore())

	var req models.CreateLostFoundRequest
	decode(t, `{"title":"Keys","description":"Blue keychain","location":"Library","type":"lost"}`, &req)
	item, err := svc.Create(ctx, &req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item["image"] != nil {
		t.Fatalf("image should be stored as null, got %#v", item["image"])
	}
	if _, ok := item["createdAt"].(time.Time); !ok {
		t.Fatalf("createdAt = %#v", item["createdAt"])
	}
	if _, ok := item["updatedAt"]; ok {
		t.Fatal("updatedAt must be absent until the first update")
	}

	got, err := svc.GetByID(ctx, item.ID())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	for _, k := range []string{"title", "description", "location", "type"} {
		if got[k] != item[k] {
			t.Errorf("%s: got %v, want %v", k, got[k], item[k])
		}
	}

	var upd models.UpdateLostFoundRequest
	decode(t, `{"type":"found"}`, &upd)
	updated, err := svc.Update(ctx, item.ID(), &upd)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated["type"] != "found" || updated["title"] != "Keys" {
		t.Fatalf("unexpected update result: %#v", updated)
	}
	createdAt := updated["createdAt"].(time.Time)
	updatedAt := updated["updatedAt"].(time.Time)
	if updatedAt.Before(createdAt) || !createdAt.Equal(item["createdAt"].(time.Time)) {
		t.Fatalf("timestamps wrong: created %v updated %v", createdAt, updatedAt)
	}
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	var upd models.UpdateNoticeRequest
	decode(t, `{"title":"x"}`, &upd)
	if _, err := NewNoticeService(st).Update(ctx, "missing", &upd); !errors.Is(err, ErrNotFound) {
		t.Fatalf("notice: expected ErrNotFound, got %v", err)
	}

	var lf models.UpdateLostFoundRequest
	decode(t, `{"title":"x"}`, &lf)
	if _, err := NewLostFoundService(st).Update(ctx, "missing", &lf); !errors.Is(err, ErrNotFound) {
		t.Fatalf("lost-found: expected ErrNotFound, got %v", err)
	}
}

func TestNoticeDefaultAuthorAndOrdering(t *testing.T) {
	ctx := context.Background()
	svc := NewNoticeService(store.NewMemoryStore())

	for _, title := range []string{"older", "newer"} {
		var req models.CreateNoticeRequest
		decode(t, `{"title":"`+title+`","content":"c","category":"General"}`, &req)
		n, err := svc.Create(ctx, &req)
		if err != nil {
			t.Fatal(err)
		}
		if n["author"] != models.DefaultNoticeAuthor {
			t.Fatalf("author = %v", n["author"])
		}
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0]["title"] != "newer" {
		t.Fatalf("expected newest first, got %#v", list)
	}
}

func TestMarketplaceUpdateErrors(t *testing.T) {
	ctx := context.Background()
	svc := NewMarketplaceService(store.NewMemoryStore())

	var create models.CreateListingRequest
	decode(t, `{"title":"Calculator","description":"fx-991","category":"Electronics","price":0}`, &create)
	listing, err := svc.Create(ctx, &create)
	if err != nil {
		t.Fatal(err)
	}
	if listing["price"] != 0.0 || listing["seller"] != models.DefaultSeller || listing["contact"] != nil {
		t.Fatalf("unexpected defaults: %#v", listing)
	}

	var empty models.UpdateListingRequest
	decode(t, `{"nope":true}`, &empty)
	if _, err := svc.Update(ctx, listing.ID(), &empty); !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}

	var upd models.UpdateListingRequest
	decode(t, `{"price":450}`, &upd)
	_, err = svc.Update(ctx, "missing", &upd)
	if !errors.Is(err, ErrListingNotFound) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}

	got, err := svc.Update(ctx, listing.ID(), &upd)
	if err != nil {
		t.Fatal(err)
	}
	if got["price"] != 450.0 || got["title"] != "Calculator" {
		t.Fatalf("unexpected listing: %#v", got)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewClubService(store.NewMemoryStore())

	var req models.CreateClubRequest
	decode(t, `{"name":"Quiz","president":"Meera"}`, &req)
	club, _ := svc.Create(ctx, &req)

	if err := svc.Delete(ctx, club.ID()); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, club.ID()); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, club.ID()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClubsOrderedByName(t *testing.T) {
	ctx := context.Background()
	svc := NewClubService(store.NewMemoryStore())
	for _, name := range []string{"Music", "Art", "Coding"} {
		var req models.CreateClubRequest
		decode(t, `{"name":"`+name+`","president":"p"}`, &req)
		svc.Create(ctx, &req)
	}

	list, _ := svc.List(ctx)
	want := []string{"Art", "Coding", "Music"}
	for i, c := range list {
		if c["name"] != want[i] {
			t.Fatalf("position %d: %v", i, c["name"])
		}
	}
}

func TestUserUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(store.NewMemoryStore())

	if err := svc.CreateProfile(ctx, "uid1", "a@nitgoa.ac.in", map[string]interface{}{"name": "Asha"}); err != nil {
		t.Fatal(err)
	}

	var empty models.UpdateProfileRequest
	decode(t, `{"email":"evil@x"}`, &empty)
	if _, err := svc.Update(ctx, "uid1", &empty); !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}

	var upd models.UpdateProfileRequest
	decode(t, `{"hostel":"H3","roomNumber":"204"}`, &upd)
	user, err := svc.Update(ctx, "uid1", &upd)
	if err != nil {
		t.Fatal(err)
	}
	if user["name"] != "Asha" || user["hostel"] != "H3" || user["email"] != "a@nitgoa.ac.in" {
		t.Fatalf("merge failed: %#v", user)
	}
	if _, ok := user["updatedAt"]; !ok {
		t.Fatal("updatedAt not set")
	}
}

func TestBirthdaysFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	users := NewUserService(st)

	users.CreateProfile(ctx, "u1", "1@x", map[string]interface{}{"name": "One", "birthDate": "2003-09-10"})
	users.CreateProfile(ctx, "u2", "2@x", map[string]interface{}{"name": "Two"})
	users.CreateProfile(ctx, "u3", "3@x", map[string]interface{}{"name": "Three", "birthDate": "2002-02-20"})
	users.CreateProfile(ctx, "u4", "4@x", map[string]interface{}{"name": "Four", "birthDate": ""})

	list, err := NewBirthdayService(st).List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID() != "u3" || list[1].ID() != "u1" {
		t.Fatalf("unexpected birthdays: %#v", list)
	}
}

func TestAuthSignupLoginVerify(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	users := NewUserService(st)
	auth := NewAuthService(identity.NewLocalProvider("secret", time.Hour), users)

	var signup models.SignupRequest
	decode(t, `{"email":"asha@nitgoa.ac.in","password":"secret123","name":"Asha","rollNo":"21CSE1001","hostel":""}`, &signup)
	res, err := auth.Signup(ctx, &signup)
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	uid, _ := res.User["uid"].(string)
	if uid == "" || res.Token == "" || res.User["name"] != "Asha" {
		t.Fatalf("unexpected signup response: %+v", res)
	}
	if _, ok := res.User["hostel"]; ok {
		t.Fatal("empty fields must not be echoed")
	}

	profile, err := users.GetByID(ctx, uid)
	if err != nil {
		t.Fatalf("profile not written: %v", err)
	}
	if profile["email"] != "asha@nitgoa.ac.in" || profile["rollNo"] != "21CSE1001" {
		t.Fatalf("unexpected profile: %#v", profile)
	}
	if _, ok := profile["hostel"]; ok {
		t.Fatal("omitted fields must not be written")
	}

	login, err := auth.Login(ctx, &models.LoginRequest{Email: "asha@nitgoa.ac.in", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User["uid"] != uid || login.User["rollNo"] != "21CSE1001" {
		t.Fatalf("login user missing profile: %#v", login.User)
	}
	if _, ok := login.User["id"]; ok {
		t.Fatal("login user should not carry the document id")
	}

	claims, err := auth.Verify(ctx, login.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UID() != uid {
		t.Fatalf("claims uid = %s", claims.UID())
	}
}

func TestAuthLoginWithoutProfile(t *testing.T) {
	ctx := context.Background()
	provider := identity.NewLocalProvider("secret", time.Hour)
	provider.SignUp(ctx, "b@nitgoa.ac.in", "secret123")

	auth := NewAuthService(provider, NewUserService(store.NewMemoryStore()))
	res, err := auth.Login(ctx, &models.LoginRequest{Email: "b@nitgoa.ac.in", Password: "secret123"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.User) != 2 || res.User["email"] != "b@nitgoa.ac.in" {
		t.Fatalf("expected only uid and email, got %#v", res.User)
	}
}

func TestAuthLoginRejected(t *testing.T) {
	auth := NewAuthService(identity.NewLocalProvider("secret", time.Hour), NewUserService(store.NewMemoryStore()))
	_, err := auth.Login(context.Background(), &models.LoginRequest{Email: "x@nitgoa.ac.in", Password: "nope"})
	var rejected *identity.RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
}

type brokenReads struct {
	store.Store
}

func (s brokenReads) Collection(name string) store.Collection {
	return brokenReadCollection{s.Store.Collection(name)}
}

type brokenReadCollection struct {
	store.Collection
}

func (brokenReadCollection) Get(ctx context.Context, id string) (store.Document, error) {
	return nil, errors.New("backend unavailable")
}

func TestAuthLoginProfileReadFails(t *testing.T) {
	ctx := context.Background()
	provider := identity.NewLocalProvider("secret", time.Hour)
	session, err := provider.SignUp(ctx, "c@nitgoa.ac.in", "secret123")
	if err != nil {
		t.Fatal(err)
	}

	auth := NewAuthService(provider, NewUserService(brokenReads{store.NewMemoryStore()}))
	res, err := auth.Login(ctx, &models.LoginRequest{Email: "c@nitgoa.ac.in", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token == "" || res.User["uid"] != session.UID || res.User["email"] != "c@nitgoa.ac.in" {
		t.Fatalf("unexpected login response: %+v", res)
	}
	if len(res.User) != 2 {
		t.Fatalf("expected only uid and email, got %#v", res.User)
	}
}
