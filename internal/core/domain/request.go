package domain

import (
	"fmt"
	"strings"
)

// Request asks for packages to be installed, removed or upgraded on a target platform.
type Request struct {
	Install []string
	Remove  []string
	Upgrade []string

	TargetPlatform string
	AllowSnapshot  bool
	// Keep leaves installed packages outside the requested closure alone.
	// When false, the resolution prunes them.
	Keep bool
}

// IsEmpty reports whether the request names no package.
func (r Request) IsEmpty() bool {
	return len(r.Install) == 0 && len(r.Remove) == 0 && len(r.Upgrade) == 0
}

// GoalKind distinguishes hard goals from soft preferences.
type GoalKind int

const (
	// MustInstall requires exactly one version within range to be selected.
	MustInstall GoalKind = iota
	// MustExclude forbids every version within range.
	MustExclude
	// SoftKeep prefers keeping the installed version selected.
	SoftKeep
)

// String returns the goal kind name.
func (k GoalKind) String() string {
	switch k {
	case MustInstall:
		return "install"
	case MustExclude:
		return "remove"
	case SoftKeep:
		return "keep"
	default:
		return fmt.Sprintf("goal(%d)", int(k))
	}
}

// Goal is a hard constraint or soft preference handed to the solver.
type Goal struct {
	Kind    GoalKind
	Package PackageID
	Range   Range
	// Version is the installed version a SoftKeep goal prefers.
	Version Version
	// Token is the request token the goal came from, if any.
	Token string
}

// IsHard reports whether the goal must hold in every solution.
func (g Goal) IsHard() bool {
	return g.Kind != SoftKeep
}

// String renders the goal for diagnostics, e.g. "install pkg-a [1.0,1.0]".
func (g Goal) String() string {
	var b strings.Builder
	b.WriteString(g.Kind.String())
	b.WriteByte(' ')
	b.WriteString(g.Package.String())
	switch g.Kind {
	case SoftKeep:
		b.WriteByte(' ')
		b.WriteString(g.Version.String())
	default:
		if !g.Range.IsAny() {
			b.WriteByte(' ')
			b.WriteString(g.Range.String())
		}
	}
	return b.String()
}

// InstallGoal builds a MustInstall goal.
func InstallGoal(id PackageID, r Range) Goal {
	return Goal{Kind: MustInstall, Package: id, Range: r}
}

// ExcludeGoal builds a MustExclude goal.
func ExcludeGoal(id PackageID, r Range) Goal {
	return Goal{Kind: MustExclude, Package: id, Range: r}
}

// KeepGoal builds a SoftKeep goal.
func KeepGoal(id PackageID, v Version) Goal {
	return Goal{Kind: SoftKeep, Package: id, Version: v}
}

// Problem is the constraint problem built from a request.
type Problem struct {
	Universe  *Universe
	Hard      []Goal
	Soft      []Goal
	Installed map[PackageID]Version
}
