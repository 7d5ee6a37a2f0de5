package messages

// Copy and hook messages.
const (
	// CopySystemRequired indicates a filesystem is required for copying.
	CopySystemRequired         = "copy system is required"
	CopyFailedStatFmt          = "failed to stat %s: %w"
	CopyFailedReadFmt          = "failed to read %s: %w"
	CopyFailedReadDirFmt       = "failed to read directory %s: %w"
	CopyFailedWriteFmt         = "failed to write %s: %w"
	CopyFailedCreateDirFmt     = "failed to create directory %s: %w"
	CopyDestNotDirFmt          = "destination %s exists and is not a directory"
	CopyUnsupportedFileTypeFmt = "unsupported file type %s for %s"

	// LayoutExecutableFmt formats executable resolution errors.
	LayoutExecutableFmt          = "failed to locate executable: %w"
	LayoutExpandPathFmt          = "failed to expand path %s: %w"
	LayoutInstallDepthInvalidFmt = "install depth must be zero or greater (got %d)"
	LayoutPackageDirRequired     = "package directory is required"

	// HookStepFailedFmt formats a failed copy step warning.
	HookStepFailedFmt  = "Warning: failed to copy %s to %s: %v\n"
	HookStepCopiedFmt  = "Copied %s to %s\n"
	HookFailedStepsFmt = "%d of %d copy steps failed"
)
