package launcher

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/quicklaunch/shortcuts/internal/model"
)

// Service starts shortcuts as detached OS processes
type Service struct {
	goos    string
	tempDir string
	lookup  func(string) (string, bool)
}

// NewService creates a launcher for the running OS
func NewService() *Service {
	return &Service{
		goos:    runtime.GOOS,
		tempDir: os.TempDir(),
		lookup:  os.LookupEnv,
	}
}

// Launch starts the shortcut and returns once the process is spawned
func (s *Service) Launch(ctx context.Context, sc model.Shortcut) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	plan, err := BuildPlan(s.goos, sc, s.lookup)
	if err != nil {
		return fmt.Errorf("cannot launch %q: %w", sc.Name, err)
	}

	var scriptPath string
	if plan.Script != "" {
		scriptPath, err = s.writeTempScript(plan.Script, plan.ScriptExt)
		if err != nil {
			return fmt.Errorf("failed to write script: %w", err)
		}
		plan.Argv = substituteScriptPath(plan.Argv, scriptPath)
	}

	// Launched programs outlive the request, so no CommandContext here
	cmd := exec.Command(plan.Argv[0], plan.Argv[1:]...)
	cmd.Dir = plan.Dir
	configureProcess(cmd, plan)

	if err := cmd.Start(); err != nil {
		if scriptPath != "" {
			os.Remove(scriptPath)
		}
		return fmt.Errorf("failed to start %s: %w", plan.Argv[0], err)
	}
	log.Printf("Launched %q (%s, pid %d)", sc.Name, sc.Kind(), cmd.Process.Pid)

	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("Shortcut %q exited: %v", sc.Name, err)
		}
		// The elevated copy reads the script after our helper has exited
		if scriptPath != "" && !plan.Elevated {
			os.Remove(scriptPath)
		}
	}()

	return nil
}

// writeTempScript writes inline script content to a uniquely named temp file
func (s *Service) writeTempScript(content, ext string) (string, error) {
	path := filepath.Join(s.tempDir, TempScriptPrefix+generateScriptID()+ext)
	if err := os.WriteFile(path, []byte(content), 0700); err != nil {
		return "", err
	}
	return path, nil
}

func substituteScriptPath(argv []string, path string) []string {
	out := make([]string, len(argv))
	for i, a := range argv {
		if a == ScriptPathToken {
			out[i] = path
			continue
		}
		out[i] = a
	}
	return out
}

// generateScriptID uses UUID v7 so leftover temp scripts sort by creation time
func generateScriptID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}
