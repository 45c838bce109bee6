// Package organizer reorders, renames and transfers a selection of files.
//
// An [Organizer] takes a [Request] naming an origin directory, the files
// selected inside it, a destination directory and the renaming settings.
// It resolves the pre-order, synthesizes each destination name and then
// moves or copies the files one at a time in that order.
//
// # Basic Usage
//
//	o := organizer.New(organizer.WithLogger(logger))
//
//	report, err := o.Organize(organizer.Request{
//	    Origin:      "/home/me/Downloads",
//	    Destination: "/home/me/Pictures/trip",
//	    Files:       []string{"IMG_3.jpg", "IMG_1.jpg", "IMG_2.jpg"},
//	    Ordering:    organizer.PatternNumeric{Pattern: "_"},
//	    Numbering:   organizer.Numbering{Enabled: true, DigitWidth: 3, Token: "trip-"},
//	    Options:     organizer.TransferOptions{Lowercase: true},
//	})
//	if errors.Is(err, organizer.ErrNoSelection) {
//	    // nothing was selected; nothing was touched
//	}
//
// # Conflicts
//
// A transfer whose destination already exists is skipped silently unless
// [TransferOptions.ReplaceExisting] is set, in which case the existing
// file is deleted first. Skipped files are listed in the returned [Report].
//
// # Failures
//
// The batch is best-effort and not transactional. The first file system
// error stops the run; transfers that already completed are not undone
// and are listed in the Report returned with the error.
//
// # Version
//
// Current version: 1.0.0
package organizer
