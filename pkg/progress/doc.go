// Package progress provides terminal progress indicators for long-running
// ordinatorctl operations: a spinner wrapped around a masterlist fetch in
// "masterlist update", a determinate bar over the per-plugin inspection
// loop in "sort", and a multi-line group of spinners tracking the
// check and download-and-install steps of "self-update".
//
// # Spinners
//
// Wrap an indeterminate operation like a masterlist fetch:
//
//	spinner := progress.NewSpinner("Fetching masterlist")
//	spinner.Start()
//	ml, _, err := masterlist.Update(ctx, client, dir, path, repoURL, branch)
//	if err != nil {
//	    spinner.Error(err.Error())
//	} else {
//	    spinner.Success(fmt.Sprintf("Masterlist at %s", ml.RevisionID))
//	}
//
// # Progress Bars
//
// Show progress for a batch operation with a known count, such as
// inspecting every plugin in the active list:
//
//	bar := progress.NewBar(len(activePlugins), "Inspecting plugins")
//	bar.Start()
//	for range activePlugins {
//	    inspectOne()
//	    bar.Increment()
//	}
//	bar.Finish()
//
// # Grouped Progress
//
// Track several spinners together (multi.go's Multi) when a single CLI
// invocation drives more than one tracked step:
//
//	steps := progress.NewMulti()
//	check := steps.AddSpinner("Checking for updates")
//	download := steps.AddSpinner("Downloading update")
//	steps.Start()
//	// ... check.Success(...), download.Success(...) as each step finishes
//	steps.Stop()
//
// # Quiet Mode
//
// CreateSpinner and CreateBar (quiet.go) return a QuietSpinner or
// QuietBar instead of the real terminal indicator when global quiet mode
// is set; these draw no animation and print plain start, milestone and
// result lines to stdout instead. A caller that always constructs a progress.Indicator doesn't
// need a separate branch for --quiet output:
//
//	progress.SetQuiet(out.IsQuiet())
//	bar := progress.CreateBar(len(activePlugins), "Inspecting plugins")
//
// # Non-TTY Handling
//
// Progress indicators gracefully degrade in non-TTY environments:
//   - Spinners and progress bars draw nothing while running: no frames,
//     no bar and no percentage updates
//   - Success, Error and Warning still print their final message
package progress
