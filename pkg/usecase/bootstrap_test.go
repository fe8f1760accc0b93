package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/tokrecharge/migration-server/pkg/usecase"
)

func TestBootstrap_CreatesLandingPage(t *testing.T) {
	ctx := context.Background()
	staticDir := filepath.Join(t.TempDir(), "client")

	created, err := usecase.Bootstrap(ctx, staticDir)
	gt.NoError(t, err)
	gt.True(t, created)

	content, err := os.ReadFile(filepath.Join(staticDir, "index.html"))
	gt.NoError(t, err)
	gt.Equal(t, string(content), string(usecase.LandingPage()))

	// Landing page calls all three API endpoints
	gt.String(t, string(content)).Contains("TokRecharge Migration Server")
	gt.String(t, string(content)).Contains("/api/health")
	gt.String(t, string(content)).Contains("/api/tools")
	gt.String(t, string(content)).Contains("/api/countries")
}

func TestBootstrap_ExistingDirectoryUntouched(t *testing.T) {
	ctx := context.Background()
	staticDir := t.TempDir()

	custom := []byte("<html>custom build</html>")
	gt.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), custom, 0644))

	created, err := usecase.Bootstrap(ctx, staticDir)
	gt.NoError(t, err)
	gt.Equal(t, created, false)

	content, err := os.ReadFile(filepath.Join(staticDir, "index.html"))
	gt.NoError(t, err)
	gt.Equal(t, string(content), string(custom))
}

func TestBootstrap_ExistingDirectoryWithoutIndex(t *testing.T) {
	ctx := context.Background()
	staticDir := t.TempDir()

	created, err := usecase.Bootstrap(ctx, staticDir)
	gt.NoError(t, err)
	gt.Equal(t, created, false)

	_, err = os.Stat(filepath.Join(staticDir, "index.html"))
	gt.True(t, os.IsNotExist(err))
}

func TestBootstrap_Idempotent(t *testing.T) {
	ctx := context.Background()
	staticDir := filepath.Join(t.TempDir(), "client")

	created, err := usecase.Bootstrap(ctx, staticDir)
	gt.NoError(t, err)
	gt.True(t, created)

	created, err = usecase.Bootstrap(ctx, staticDir)
	gt.NoError(t, err)
	gt.Equal(t, created, false)
}

func TestBootstrap_StaticRootIsFile(t *testing.T) {
	ctx := context.Background()
	staticDir := filepath.Join(t.TempDir(), "client")
	gt.NoError(t, os.WriteFile(staticDir, []byte("not a directory"), 0644))

	_, err := usecase.Bootstrap(ctx, staticDir)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("static root is not a directory")
}

func TestBootstrap_CreateFailure(t *testing.T) {
	ctx := context.Background()
	parent := filepath.Join(t.TempDir(), "file")
	gt.NoError(t, os.WriteFile(parent, []byte("x"), 0644))

	// Parent path component is a regular file, so MkdirAll must fail
	_, err := usecase.Bootstrap(ctx, filepath.Join(parent, "client"))
	gt.Error(t, err)
}

func TestBootstrap_CreateNoticeBeforeWrite(t *testing.T) {
	ctx := context.Background()
	staticDir := filepath.Join(t.TempDir(), "client")

	var notified []string
	created, err := usecase.Bootstrap(ctx, staticDir,
		usecase.WithCreateNotice(func(dir string) {
			_, statErr := os.Stat(dir)
			gt.True(t, os.IsNotExist(statErr))
			notified = append(notified, dir)
		}),
	)
	gt.NoError(t, err)
	gt.True(t, created)
	gt.Equal(t, notified, []string{staticDir})
}

func TestBootstrap_NoNoticeForExistingDirectory(t *testing.T) {
	ctx := context.Background()

	called := false
	_, err := usecase.Bootstrap(ctx, t.TempDir(),
		usecase.WithCreateNotice(func(string) { called = true }),
	)
	gt.NoError(t, err)
	gt.Equal(t, called, false)
}
