package services_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"productgen/internal/dataset"
	"productgen/internal/domain"
	"productgen/internal/generator"
	"productgen/internal/repos"
	"productgen/internal/services"
)

func memRepo(t *testing.T) *repos.ProductRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return repos.NewProductRepo(db)
}

func csvOf(t *testing.T, n int) (*bytes.Buffer, []domain.Product) {
	t.Helper()
	ps := generator.NewSeeded(11).Dataset(n, nil)
	var buf bytes.Buffer
	if err := dataset.WriteCSV(&buf, ps); err != nil {
		t.Fatal(err)
	}
	return &buf, ps
}

func TestDatasetService_Generate(t *testing.T) {
	dir := t.TempDir()
	svc := services.NewDatasetService(dir)

	res, err := svc.Generate(services.DatasetRequest{Count: 5, Format: "both", Output: "out", Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 5 || len(res.Files) != 2 {
		t.Fatalf("result %+v", res)
	}
	if res.Sample == nil || res.Sample.ID != 1 {
		t.Fatalf("sample %+v", res.Sample)
	}
	for _, f := range []string{"out.json", "out.csv"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
	}
}

func TestDatasetService_Validate(t *testing.T) {
	svc := services.NewDatasetService(t.TempDir())

	if _, err := svc.Generate(services.DatasetRequest{Count: 0}); !errors.Is(err, services.ErrInvalidCount) {
		t.Fatalf("count 0: %v", err)
	}
	if _, err := svc.Generate(services.DatasetRequest{Count: -3}); !errors.Is(err, services.ErrInvalidCount) {
		t.Fatalf("count -3: %v", err)
	}
	if _, err := svc.Generate(services.DatasetRequest{Count: 1, Format: "xml"}); !errors.Is(err, domain.ErrUnknownFormat) {
		t.Fatalf("format xml: %v", err)
	}

	req, format, err := svc.Validate(services.DatasetRequest{Count: 2})
	if err != nil || format != domain.FormatBoth || req.Output != "products" {
		t.Fatalf("defaults: %+v %q %v", req, format, err)
	}
}

func TestImportService_AllRowsInChunks(t *testing.T) {
	repo := memRepo(t)
	svc := services.NewImportService(repo, 7, "&customise=true")
	buf, ps := csvOf(t, 50)

	res, err := svc.Import(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Read != 50 || res.Written != 50 || res.Skipped != 0 || res.Chunks != 8 || res.Stored != 50 {
		t.Fatalf("result %+v", res)
	}
	got, err := repo.Get(ps[9].UUID)
	if err != nil {
		t.Fatal(err)
	}
	if got.CustomiseLink != ps[9].ImageURL+"&customise=true" {
		t.Fatalf("customise link %q", got.CustomiseLink)
	}
}

func TestImportService_CategoryFilter(t *testing.T) {
	repo := memRepo(t)
	svc := services.NewImportService(repo, 0, "")
	buf, ps := csvOf(t, 120)

	keep := ps[0].Category
	want := 0
	for _, p := range ps {
		if p.Category == keep {
			want++
		}
	}

	res, err := svc.Import(buf, []string{" " + keep + " ", ""})
	if err != nil {
		t.Fatal(err)
	}
	if res.Written != want || res.Skipped != 120-want {
		t.Fatalf("result %+v, want %d written", res, want)
	}
	counts, _ := repo.CountByCategory()
	if len(counts) != 1 || counts[0].Category != keep {
		t.Fatalf("counts %+v", counts)
	}
}

func TestImportService_ResetBeforeReimport(t *testing.T) {
	repo := memRepo(t)
	svc := services.NewImportService(repo, 0, "")
	big, _ := csvOf(t, 30)
	if _, err := svc.Import(big, nil); err != nil {
		t.Fatal(err)
	}

	var small bytes.Buffer
	if err := dataset.WriteCSV(&small, generator.NewSeeded(99).Dataset(4, nil)); err != nil {
		t.Fatal(err)
	}
	if err := svc.Reset(); err != nil {
		t.Fatal(err)
	}
	res, err := svc.Import(&small, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Written != 4 || res.Stored != 4 {
		t.Fatalf("result %+v, want only the new rows stored", res)
	}
}

func TestImportService_Errors(t *testing.T) {
	svc := services.NewImportService(memRepo(t), 10, "")
	if _, err := svc.Import(strings.NewReader("not,a,product\n1,2,3\n"), nil); err == nil {
		t.Fatal("expected error for foreign csv")
	}
	if _, err := svc.ImportFile(filepath.Join(t.TempDir(), "missing.csv"), nil); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportService_ImportFileFromGeneratedDataset(t *testing.T) {
	dir := t.TempDir()
	gen := services.NewDatasetService(dir)
	gen.Now = func() time.Time { return time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC) }
	if _, err := gen.Generate(services.DatasetRequest{Count: 25, Format: "csv", Output: "p"}); err != nil {
		t.Fatal(err)
	}

	repo := memRepo(t)
	res, err := services.NewImportService(repo, 10, "").ImportFile(filepath.Join(dir, "p.csv"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Written != 25 || res.Chunks != 3 {
		t.Fatalf("result %+v", res)
	}
}

func newAuth(t *testing.T, secret string) *services.AuthService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	auth := services.NewAuthService(repos.NewUserRepo(db), secret, 10*time.Minute)
	if err := auth.EnsureUser("user", "password"); err != nil {
		t.Fatal(err)
	}
	return auth
}

func TestAuthService_LoginIssuesToken(t *testing.T) {
	auth := newAuth(t, "TestJwtSecretKeyChangeMeThis32CharKey")

	tok, err := auth.Login("user", "password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if strings.Count(tok, ".") != 2 {
		t.Fatalf("not a jwt: %q", tok)
	}
	user, err := auth.Verify(tok)
	if err != nil || user != "user" {
		t.Fatalf("verify: %q %v", user, err)
	}

	for _, creds := range [][2]string{{"user", "wrong"}, {"nobody", "password"}, {"", ""}} {
		if _, err := auth.Login(creds[0], creds[1]); !errors.Is(err, services.ErrBadCreds) {
			t.Fatalf("login %v: %v", creds, err)
		}
	}
}

func TestAuthService_TokenExpiry(t *testing.T) {
	auth := newAuth(t, "k1")
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	auth.Now = func() time.Time { return now }

	tok, err := auth.Issue("user")
	if err != nil {
		t.Fatal(err)
	}
	now = now.Add(9 * time.Minute)
	if _, err := auth.Verify(tok); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, err := auth.Verify(tok); !errors.Is(err, services.ErrExpiredToken) {
		t.Fatalf("want ErrExpiredToken, got %v", err)
	}
}

func TestAuthService_RejectsForeignSignature(t *testing.T) {
	auth := newAuth(t, "right-secret")
	other := newAuth(t, "wrong-secret")

	tok, err := other.Issue("user")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Verify(tok); !errors.Is(err, services.ErrBadToken) {
		t.Fatalf("want ErrBadToken, got %v", err)
	}
	for _, bad := range []string{"", "not.a.jwt", tok + "x"} {
		if _, err := auth.Verify(bad); !errors.Is(err, services.ErrBadToken) {
			t.Fatalf("token %q: %v", bad, err)
		}
	}
}

func TestAuthService_UnknownSubject(t *testing.T) {
	auth := newAuth(t, "k")
	tok, err := auth.Issue("ghost")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Verify(tok); !errors.Is(err, services.ErrBadToken) {
		t.Fatalf("want ErrBadToken, got %v", err)
	}
}

func TestAuthService_EnsureUserUpdatesPassword(t *testing.T) {
	auth := newAuth(t, "k")
	if err := auth.EnsureUser("user", "changed"); err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Login("user", "password"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("old password still accepted: %v", err)
	}
	if _, err := auth.Login("user", "changed"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}
