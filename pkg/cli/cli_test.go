package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pfd-lab/meshirec/pkg/cli"
)

func writeRecordsFile(t *testing.T) string {
	t.Helper()
	data := `restaurants:
  - name: A
    referrer: "alice, bob"
  - name: B
    referrer: alice
  - name: C
    referrer: "bob, carol"
`
	path := filepath.Join(t.TempDir(), "records.yml")
	gt.NoError(t, os.WriteFile(path, []byte(data), 0600))
	return path
}

func TestRecommendCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("user mode with records file", func(t *testing.T) {
		args := []string{"meshirec", "-q", "recommend", "--records-file", writeRecordsFile(t), "--user", "alice"}
		gt.NoError(t, cli.Run(ctx, args))
	})

	t.Run("item mode with records file", func(t *testing.T) {
		args := []string{"meshirec", "-q", "recommend", "--records-file", writeRecordsFile(t), "--restaurant", "A"}
		gt.NoError(t, cli.Run(ctx, args))
	})

	t.Run("user and restaurant are mutually exclusive", func(t *testing.T) {
		args := []string{"meshirec", "-q", "recommend", "--records-file", writeRecordsFile(t), "--user", "alice", "--restaurant", "A"}
		gt.Error(t, cli.Run(ctx, args))
	})

	t.Run("neither user nor restaurant", func(t *testing.T) {
		args := []string{"meshirec", "-q", "recommend", "--records-file", writeRecordsFile(t)}
		gt.Error(t, cli.Run(ctx, args))
	})

	t.Run("missing source configuration is fatal", func(t *testing.T) {
		args := []string{"meshirec", "-q", "recommend", "--user", "alice"}
		gt.Error(t, cli.Run(ctx, args))
	})
}

func TestRecordsCommand(t *testing.T) {
	args := []string{"meshirec", "-q", "records", "--records-file", writeRecordsFile(t)}
	gt.NoError(t, cli.Run(context.Background(), args))
}
