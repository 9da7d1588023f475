package tracker

import (
	"fmt"
	"sort"

	"github.com/svandewiele/tally/internal/logger"
	"github.com/svandewiele/tally/internal/models"
	"github.com/svandewiele/tally/internal/storage"
)

// ActivityManager owns the activity collection: lookup, persistence,
// re-parenting and the derived listings used for suggestions.
type ActivityManager struct {
	store storage.Provider
}

func NewActivityManager(store storage.Provider) *ActivityManager {
	return &ActivityManager{store: store}
}

// GetSavedActivityByID is a read-through lookup against the store.
// Returns nil without error when no such activity exists.
func (m *ActivityManager) GetSavedActivityByID(id string) (*models.Activity, error) {
	return m.store.FindActivityByID(id)
}

// GetSavedActivityByName is a read-through lookup against the store.
// Returns nil without error when no such activity exists.
func (m *ActivityManager) GetSavedActivityByName(name string) (*models.Activity, error) {
	return m.store.FindActivityByName(name)
}

// Create persists a new top-level activity. Top-level names must be unique
// because they drive user-facing lookup and parent suggestions.
func (m *ActivityManager) Create(activity *models.Activity) error {
	if err := activity.Validate(); err != nil {
		return fmt.Errorf("invalid activity: %w", err)
	}

	taken, err := m.store.TopLevelNameExists(activity.Name)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: %s", ErrNameTaken, activity.Name)
	}

	return m.store.SaveActivity(activity)
}

// GetAllActivityNames returns the names of every activity, top-level and
// nested, for parent suggestion lists. Callers present re-parent choices
// after removing the activity's own name.
func (m *ActivityManager) GetAllActivityNames() ([]string, error) {
	roots, err := m.store.GetAllActivities()
	if err != nil {
		return nil, err
	}

	var names []string
	var collect func(*models.Activity)
	collect = func(a *models.Activity) {
		names = append(names, a.Name)
		for _, sub := range a.SubActivities {
			collect(sub)
		}
	}
	for _, root := range roots {
		collect(root)
	}
	return names, nil
}

// AddActivityAsSub moves child under newParent: it is detached from its
// current parent, appended to newParent's children, and its parent link is
// updated. The move is rejected before any mutation when it would create a
// cycle, i.e. when newParent is the child itself or one of its descendants.
// Both affected trees are persisted.
func (m *ActivityManager) AddActivityAsSub(child, newParent *models.Activity) error {
	if newParent.ID == child.ID || child.HasDescendant(newParent.ID) {
		return fmt.Errorf("%w: %q cannot become a child of %q", ErrCycle, child.Name, newParent.Name)
	}

	oldParentID := child.ParentID
	if oldParentID == newParent.ID {
		newParent.RemoveSubActivity(child.ID)
	}

	newParent.SubActivities = append(newParent.SubActivities, child)
	child.ParentID = newParent.ID

	// Persist the moved subtree first: the stored parent link is what
	// carries the move, and the tree rewrites below re-read it.
	if err := m.store.SaveActivity(child); err != nil {
		return fmt.Errorf("failed to persist moved activity: %w", err)
	}

	if oldParentID != "" && oldParentID != newParent.ID {
		oldParent, err := m.store.FindActivityByID(oldParentID)
		if err != nil {
			return err
		}
		if oldParent != nil {
			oldRoot, err := m.resolveRoot(oldParent)
			if err != nil {
				return err
			}
			if err := m.store.SaveActivity(oldRoot); err != nil {
				return fmt.Errorf("failed to persist previous parent tree: %w", err)
			}
		}
	}

	root, err := m.resolveRoot(newParent)
	if err != nil {
		return err
	}
	if err := m.store.SaveActivity(root); err != nil {
		return fmt.Errorf("failed to persist new parent tree: %w", err)
	}
	return nil
}

// resolveRoot walks the parent chain upward through *persisted* lookups
// until an activity without a parent remains. Saves act on whole trees, so
// following the stored chain rather than the in-memory one keeps a save
// after re-parenting from acting on stale structure. When the activity has
// no parent the activity itself, with any in-memory edits, is the root.
func (m *ActivityManager) resolveRoot(activity *models.Activity) (*models.Activity, error) {
	current := activity
	for current.ParentID != "" {
		parent, err := m.store.FindActivityByID(current.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			// Dangling parent reference: current is the effective root
			break
		}
		current = parent
	}
	return current, nil
}

// Save persists an activity. The activity's own subtree is written first so
// in-memory edits reach the store, then the top-level owner of its tree is
// re-persisted so the whole tree shape is written consistently in one
// place, which matters after a re-parent.
func (m *ActivityManager) Save(activity *models.Activity) error {
	if err := m.store.SaveActivity(activity); err != nil {
		return err
	}

	if activity.ParentID == "" {
		return nil
	}

	root, err := m.resolveRoot(activity)
	if err != nil {
		return err
	}
	if root.ID == activity.ID {
		return nil
	}
	return m.store.SaveActivity(root)
}

// SetCompleted toggles the completion flag and persists through Save. The
// toggle never cascades and is never blocked; completing an activity whose
// children are not all complete only logs a warning.
func (m *ActivityManager) SetCompleted(activity *models.Activity, completed bool) error {
	if completed && !activity.IsAllSubActivitiesCompleted() {
		logger.Warn("Completing activity with incomplete sub-activities",
			"activity", activity.Name, "id", activity.ID)
	}

	activity.Completed = completed
	return m.Save(activity)
}

// Delete removes the activity from storage. Children are not cascaded:
// direct children are promoted to top level so they stay addressable
// instead of keeping a dangling parent link.
func (m *ActivityManager) Delete(activity *models.Activity) error {
	saved, err := m.store.FindActivityByID(activity.ID)
	if err != nil {
		return err
	}
	if saved == nil {
		return fmt.Errorf("%w: %s", ErrActivityNotFound, activity.ID)
	}

	for _, child := range saved.SubActivities {
		child.ParentID = ""
		if err := m.store.SaveActivity(child); err != nil {
			return fmt.Errorf("failed to promote sub-activity %s: %w", child.Name, err)
		}
	}

	return m.store.DeleteActivity(saved.ID)
}

// GetExistingTags returns the sorted union of tags across all activities.
func (m *ActivityManager) GetExistingTags() ([]string, error) {
	return m.collectField(func(a *models.Activity) []string { return a.Tags })
}

// GetExistingProjects returns the sorted union of projects across all
// activities.
func (m *ActivityManager) GetExistingProjects() ([]string, error) {
	return m.collectField(func(a *models.Activity) []string { return a.Projects })
}

// GetExistingLocations returns the sorted distinct locations across all
// activities.
func (m *ActivityManager) GetExistingLocations() ([]string, error) {
	return m.collectField(func(a *models.Activity) []string {
		if a.Location == "" {
			return nil
		}
		return []string{a.Location}
	})
}

func (m *ActivityManager) collectField(field func(*models.Activity) []string) ([]string, error) {
	roots, err := m.store.GetAllActivities()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var walk func(*models.Activity)
	walk = func(a *models.Activity) {
		for _, v := range field(a) {
			seen[v] = struct{}{}
		}
		for _, sub := range a.SubActivities {
			walk(sub)
		}
	}
	for _, root := range roots {
		walk(root)
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}
