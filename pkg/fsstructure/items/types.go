package items

// Type names as they appear under the "$type" key of a plain tree.
const (
	// TypeFile tags a file descriptor.
	TypeFile = "File"
	// TypeSymlink tags a symlink descriptor.
	TypeSymlink = "Symlink"
	// TypeDir tags a directory marker.
	TypeDir = "Dir"
	// TypeRoot is the type of the tree root.
	TypeRoot = "Root"
)

// Keys of tagged descriptors.
const (
	KeyType     = "$type"
	KeyTarget   = "target"
	KeyLinkType = "type"
	KeyData     = "data"
)

// Default values for file modes
const (
	// DefaultFileMode is the default mode for files (0644)
	DefaultFileMode = 0644
	// DefaultDirMode is the default mode for directories (0755)
	DefaultDirMode = 0755
)
