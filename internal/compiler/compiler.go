// SPDX-License-Identifier: MPL-2.0

package compiler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ironpyc/internal/ipyproc"

	"github.com/charmbracelet/log"
)

// ErrCompileFailed is the sentinel error wrapped by CompileFailureError.
var ErrCompileFailed = errors.New("compilation failed")

type (
	// CompileResult reports a finished pyc.py invocation.
	CompileResult struct {
		// OutputPath is the path of the produced assembly.
		OutputPath string
		// PycOutput is the combined output of the pyc.py process.
		PycOutput string
		// ResponseFile is the retained response file path, set only
		// when the request asked to keep it.
		ResponseFile string
		// GatheredDLLs lists runtime DLLs copied next to the assembly.
		GatheredDLLs []string
	}

	// CompileFailureError is returned when pyc.py exits non-zero.
	// It wraps ErrCompileFailed for errors.Is() compatibility.
	CompileFailureError struct {
		ExitCode ipyproc.ExitCode
		Output   string
	}
)

// Error implements the error interface.
func (e *CompileFailureError) Error() string {
	return fmt.Sprintf("pyc.py exited with status %s", e.ExitCode)
}

// Unwrap returns ErrCompileFailed so callers can use errors.Is for detection.
func (e *CompileFailureError) Unwrap() error { return ErrCompileFailed }

// Compile invokes pyc.py under the located IronPython executable with a
// response file assembled from the request. The response file is removed
// afterwards unless the request keeps it; the subprocess runs with the
// output directory as its working directory.
func Compile(ctx context.Context, req *CompileRequest) (*CompileResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	outputPath, err := req.OutputPath()
	if err != nil {
		return nil, err
	}

	args := buildPycArgs(req, outputPath)
	respPath, err := writeResponseFile(args)
	if err != nil {
		return nil, err
	}
	keepResp := req.KeepResponseFile
	defer func() {
		if !keepResp {
			os.Remove(respPath)
		}
	}()

	log.Debug("invoking pyc.py", "pyc", req.Install.PycPath, "response", respPath, "out", outputPath)

	result := ipyproc.Execute(ctx, ipyproc.Invocation{
		Executable: req.Install.Executable,
		Args:       []string{req.Install.PycPath, "@" + respPath},
		WorkDir:    filepath.Dir(outputPath),
	})
	if result.Error != nil {
		return nil, result.Error
	}

	pycOutput := result.Output
	if result.ErrOutput != "" {
		pycOutput += result.ErrOutput
	}

	if !result.ExitCode.IsSuccess() {
		// Keep the response file around on failure when requested so the
		// exact pyc invocation can be reproduced.
		return nil, &CompileFailureError{ExitCode: result.ExitCode, Output: pycOutput}
	}

	compiled := &CompileResult{
		OutputPath: outputPath,
		PycOutput:  pycOutput,
	}
	if keepResp {
		compiled.ResponseFile = respPath
	}

	if req.CopyRuntimeDLLs {
		dlls, err := GatherRuntimeDLLs(req.Install.Dir, filepath.Dir(outputPath))
		if err != nil {
			return nil, err
		}
		compiled.GatheredDLLs = dlls
	}

	return compiled, nil
}

// buildPycArgs assembles the pyc.py argument list: output location, target
// options for executables, then the entry scripts and every compilable
// dependency from the manifest.
func buildPycArgs(req *CompileRequest, outputPath string) []string {
	stem := strings.TrimSuffix(outputPath, filepath.Ext(outputPath))
	args := []string{"/out:" + stem}

	if req.Target.IsExecutable() {
		args = append(args, "/target:"+string(req.Target))
		args = append(args, "/main:"+req.Scripts[0])
		if req.Platform != PlatformAny {
			args = append(args, "/platform:"+string(req.Platform))
		}
		if req.Embed {
			args = append(args, "/embed")
		}
		if req.Standalone {
			args = append(args, "/standalone")
		}
	}
	if req.Target == TargetWinEXE && req.MTA {
		args = append(args, "/mta")
	}

	args = append(args, req.Scripts...)
	args = append(args, req.Manifest.Compilable...)
	return args
}

// writeResponseFile writes one pyc argument per line to a fresh temp file
// and returns its path.
func writeResponseFile(args []string) (string, error) {
	file, err := os.CreateTemp("", "IPC*.txt")
	if err != nil {
		return "", fmt.Errorf("creating response file: %w", err)
	}
	path := file.Name()

	for _, arg := range args {
		if _, err := file.WriteString(arg + "\n"); err != nil {
			file.Close()
			os.Remove(path)
			return "", fmt.Errorf("writing response file: %w", err)
		}
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing response file: %w", err)
	}
	return path, nil
}
