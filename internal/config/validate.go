package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSave(); err != nil {
		return err
	}
	if err := c.validateImports(); err != nil {
		return err
	}
	if err := c.validateSearch(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSave() error {
	if err := ensureBareName("save.chapter_dir", c.Save.ChapterDir); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateImports() error {
	switch c.Imports.DuplicatePolicy {
	case "skip", "rename":
		return nil
	default:
		return fmt.Errorf("imports.duplicate_policy must be \"skip\" or \"rename\", got %q", c.Imports.DuplicatePolicy)
	}
}

func (c *Config) validateSearch() error {
	if err := ensureBareName("search.db_name", c.Search.DBName); err != nil {
		return err
	}
	return nil
}

// ensureBareName rejects values that would escape the project directory when
// joined onto it.
func ensureBareName(key, value string) error {
	if value == "." || value == ".." || strings.ContainsAny(value, `/\`) {
		return fmt.Errorf("%s must be a bare name, got %q", key, value)
	}
	return nil
}
