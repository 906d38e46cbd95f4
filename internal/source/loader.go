package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"apidoc2blue/internal/logger"
	"apidoc2blue/internal/model"
)

// LoadDocument reads api_data and api_project and returns the conversion input.
// A missing project file is tolerated (nil project); a missing data file is not.
func LoadDocument(dataPath, projectPath string, hints []string) (*model.Document, error) {
	endpoints, err := LoadEndpoints(dataPath, hints)
	if err != nil {
		return nil, err
	}

	project, err := LoadProject(projectPath, hints)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		logger.Warn("Project file %s not found, rendering without preamble", projectPath)
		project = nil
	}

	return &model.Document{
		Project:   project,
		Endpoints: endpoints,
	}, nil
}

// LoadEndpoints decodes an api_data.json array (or the api_data.js define wrapper)
func LoadEndpoints(path string, hints []string) ([]model.Endpoint, error) {
	content, err := ReadFile(path, hints)
	if err != nil {
		return nil, err
	}

	content = unwrapDefine(content)
	if len(content) == 0 {
		return nil, nil
	}

	// api_data.js wraps the list as {"api": [...]}
	if content[0] == '{' {
		var wrapped struct {
			API []model.Endpoint `json:"api"`
		}
		if err := json.Unmarshal(content, &wrapped); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		return wrapped.API, nil
	}

	var endpoints []model.Endpoint
	if err := json.Unmarshal(content, &endpoints); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return endpoints, nil
}

// LoadProject decodes an api_project.json object (or the api_project.js define wrapper)
func LoadProject(path string, hints []string) (*model.Project, error) {
	content, err := ReadFile(path, hints)
	if err != nil {
		return nil, err
	}

	content = unwrapDefine(content)
	if len(content) == 0 || bytes.Equal(content, []byte("null")) {
		return nil, nil
	}

	var project model.Project
	if err := json.Unmarshal(content, &project); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &project, nil
}

// unwrapDefine strips the "define(...);" wrapper of apiDoc's .js outputs
func unwrapDefine(content []byte) []byte {
	content = bytes.TrimSpace(content)
	if !bytes.HasPrefix(content, []byte("define(")) {
		return content
	}

	content = bytes.TrimPrefix(content, []byte("define("))
	content = bytes.TrimSuffix(content, []byte(";"))
	content = bytes.TrimSuffix(bytes.TrimSpace(content), []byte(")"))
	return bytes.TrimSpace(content)
}
