// Package hook implements the post-install hook that copies the bundled coding
// standards, GitHub templates, and helper scripts into the consuming project.
package hook

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/conn-castle/standards-hook/internal/layout"
	"github.com/conn-castle/standards-hook/internal/xcopy"
)

// InstallDepthFromRoot is the number of directory levels between the package
// directory and the consuming project's root under the host's install layout
// (<root>/vendor/<vendor>/<package>).
const InstallDepthFromRoot = 3

// Event names a package manager lifecycle event.
type Event string

const (
	// EventPostInstall fires when install runs against an existing lock file.
	EventPostInstall Event = "post-install-cmd"
	// EventPostUpdate fires when install runs without a lock file, or on update.
	EventPostUpdate Event = "post-update-cmd"
)

// Handler reacts to a lifecycle event.
type Handler func(ctx context.Context, sys xcopy.System, lay layout.Layout) Report

// Subscription binds an event to a named handler.
type Subscription struct {
	Event       Event
	HandlerName string
	Handler     Handler
}

// PostInstallName is the handler name reported for PostInstall.
const PostInstallName = "post_install"

// SubscribedEvents returns the event-to-handler mapping. Both events run the
// same handler because the copy does not depend on which one fired.
func SubscribedEvents() map[Event]Subscription {
	return map[Event]Subscription{
		EventPostInstall: {Event: EventPostInstall, HandlerName: PostInstallName, Handler: PostInstall},
		EventPostUpdate:  {Event: EventPostUpdate, HandlerName: PostInstallName, Handler: PostInstall},
	}
}

// SortedEvents returns the subscribed event names in lexical order.
func SortedEvents() []Event {
	subs := SubscribedEvents()
	events := make([]Event, 0, len(subs))
	for event := range subs {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })
	return events
}

// Activate is called when the plugin is registered. There is nothing to set up.
func Activate() {}

// CopyStep is one source tree copied into the project. Source is relative to
// the package directory; Dest is relative to the project root.
type CopyStep struct {
	Name   string
	Source string
	Dest   string
}

// Steps lists the copies PostInstall performs, in order.
func Steps() []CopyStep {
	return []CopyStep{
		{Name: "standards", Source: "standards", Dest: "."},
		{Name: "github", Source: "github", Dest: ".github"},
		{Name: "bin", Source: "bin", Dest: "bin"},
	}
}

// StepResult records the outcome of one CopyStep with absolute paths.
type StepResult struct {
	Step   CopyStep
	Source string
	Dest   string
	Err    error
}

// Report collects the results of a hook run.
type Report struct {
	Results []StepResult
}

// Failed returns the results whose copy returned an error.
func (r Report) Failed() []StepResult {
	var failed []StepResult
	for _, result := range r.Results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}
	return failed
}

// OK reports whether every step succeeded.
func (r Report) OK() bool {
	return len(r.Failed()) == 0
}

// PostInstall copies every step's source tree from the package directory into
// the project root. A failed step does not stop the steps after it; callers
// decide whether the report's failures matter.
func PostInstall(ctx context.Context, sys xcopy.System, lay layout.Layout) Report {
	steps := Steps()
	report := Report{Results: make([]StepResult, 0, len(steps))}
	for _, step := range steps {
		source := filepath.Join(lay.PackageDir, step.Source)
		dest := filepath.Join(lay.ProjectRoot, step.Dest)
		report.Results = append(report.Results, StepResult{
			Step:   step,
			Source: source,
			Dest:   dest,
			Err:    xcopy.Copy(ctx, sys, source, dest),
		})
	}
	return report
}
