package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/shopboard/shopboard/internal/config"
	"github.com/shopboard/shopboard/internal/schedremote"
	"github.com/shopboard/shopboard/internal/taskstore"
	"github.com/shopboard/shopboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduler serves one job: running on the first poll, complete with
// the sample result afterwards.
func fakeScheduler(t *testing.T) *httptest.Server {
	t.Helper()
	var polls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/schedule", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(schedremote.SubmitResponse{JobID: "job-1"})
	})
	mux.HandleFunc("/api/schedule/job-1", func(w http.ResponseWriter, r *http.Request) {
		status := schedremote.JobStatus{Status: schedremote.StatusRunning, Progress: 40, Step: "sequencing"}
		if polls.Add(1) > 1 {
			status = schedremote.JobStatus{Status: schedremote.StatusComplete, Progress: 100, Result: testutil.SampleResult()}
		}
		json.NewEncoder(w).Encode(status)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRunCommand_EndToEnd(t *testing.T) {
	srv := fakeScheduler(t)

	csvPath := filepath.Join(t.TempDir(), "tasks.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testutil.SampleSheetCSV), 0o644))
	outDir := filepath.Join(t.TempDir(), "reports")

	var out bytes.Buffer
	cfg := config.Default()
	cfg.Service.BaseURL = srv.URL
	cfg.Service.PollIntervalMS = 5
	app := &App{
		Cfg:    cfg,
		Store:  taskstore.New(),
		Client: schedremote.NewClient(srv.URL, schedremote.NoopObserver{}),
		Out:    &out,
	}

	root := NewRootCmd(app)
	root.SetArgs([]string{"run", csvPath, "--out-dir", outDir})
	require.NoError(t, root.Execute())

	text := out.String()
	assert.Contains(t, text, "job job-1 accepted")
	assert.Contains(t, text, "Job-001")
	assert.Contains(t, text, "Store A")

	for _, name := range []string{"project_summary.csv", "store_summary.csv", "final_schedule.csv"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestRunCommand_RemoteFailureSurfacesErrorText(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/schedule", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(schedremote.SubmitResponse{JobID: "job-9"})
	})
	mux.HandleFunc("/api/schedule/job-9", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(schedremote.JobStatus{
			Status: schedremote.StatusError,
			Error:  "infeasible: no capacity for team Mill",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	csvPath := filepath.Join(t.TempDir(), "tasks.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testutil.SampleSheetCSV), 0o644))

	cfg := config.Default()
	cfg.Service.BaseURL = srv.URL
	cfg.Service.PollIntervalMS = 5
	app := &App{
		Cfg:    cfg,
		Store:  taskstore.New(),
		Client: schedremote.NewClient(srv.URL, schedremote.NoopObserver{}),
		Out:    &bytes.Buffer{},
	}

	root := NewRootCmd(app)
	root.SetArgs([]string{"run", csvPath})
	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "infeasible: no capacity for team Mill")
}
