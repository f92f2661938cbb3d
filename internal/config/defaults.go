package config

const (
	defaultProjectsDir      = "~/Documents/folio"
	defaultLogDir           = "~/.local/share/folio/logs"
	defaultChapterDir       = "chapters"
	defaultBackupCount      = 5
	defaultDuplicatePolicy  = "rename"
	defaultSearchDBName     = "search.db"
	defaultChunkWords       = 200
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 60
)

// Default returns the repository default configuration.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectsDir: defaultProjectsDir,
			LogDir:      defaultLogDir,
		},
		Save: Save{
			ExternalizeChapters: true,
			ChapterDir:          defaultChapterDir,
			BackupCount:         defaultBackupCount,
		},
		Imports: Imports{
			DuplicatePolicy: defaultDuplicatePolicy,
		},
		Search: Search{
			Enabled:    true,
			DBName:     defaultSearchDBName,
			ChunkWords: defaultChunkWords,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
