package session

import (
	"fmt"

	"github.com/google/uuid"

	"masterplan/internal/domain"
	"masterplan/internal/undo"
)

// Task mutations push an undo entry before applying. Every apply is
// copy-on-write: the previous Project value handed out by Project() is
// never touched.

// AddTask appends a task, filling defaults for blank fields.
func (c *Controller) AddTask(t domain.Task) (domain.Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return domain.Task{}, ErrNoProject
	}
	ts := domain.Stamp(c.now())
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.TaskNotStarted
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	t.CreatedAt = ts
	t.UpdatedAt = ts
	if err := domain.ValidateTask(t); err != nil {
		return domain.Task{}, fmt.Errorf("invalid task: %w", err)
	}
	after := t
	c.History.Push(undo.Item{Kind: undo.KindCreateTask, TargetID: t.ID, After: &after})
	c.applyTasks(appendTask(c.project.Tasks, t))
	return t, nil
}

// UpdateTask replaces the task with the same ID.
func (c *Controller) UpdateTask(t domain.Task) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return ErrNoProject
	}
	prev, ok := findTask(c.project.Tasks, t.ID)
	if !ok {
		return fmt.Errorf("task %s: %w", t.ID, ErrNotFound)
	}
	t.CreatedAt = prev.CreatedAt
	t.UpdatedAt = domain.Stamp(c.now())
	if err := domain.ValidateTask(t); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}
	before, after := prev, t
	c.History.Push(undo.Item{Kind: undo.KindEditTask, TargetID: t.ID, Before: &before, After: &after})
	c.applyTasks(replaceTask(c.project.Tasks, t))
	return nil
}

// DeleteTask removes a task by ID.
func (c *Controller) DeleteTask(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return ErrNoProject
	}
	prev, ok := findTask(c.project.Tasks, id)
	if !ok {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	before := prev
	c.History.Push(undo.Item{Kind: undo.KindDeleteTask, TargetID: id, Before: &before})
	c.applyTasks(removeTask(c.project.Tasks, id))
	return nil
}

// AssignResources sets the assignee list of a task.
func (c *Controller) AssignResources(taskID string, resourceIDs []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return ErrNoProject
	}
	prev, ok := findTask(c.project.Tasks, taskID)
	if !ok {
		return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}
	next := prev
	next.AssignedTo = append([]string(nil), resourceIDs...)
	next.UpdatedAt = domain.Stamp(c.now())
	before, after := prev, next
	c.History.Push(undo.Item{Kind: undo.KindAssignResource, TargetID: taskID, Before: &before, After: &after})
	c.applyTasks(replaceTask(c.project.Tasks, next))
	return nil
}

// applyTasks installs a new task collection, recomputes progress, and
// applies the edit transition. Callers hold the lock.
func (c *Controller) applyTasks(tasks []domain.Task) {
	p := *c.project
	p.Tasks = tasks
	p.Progress = domain.CalculateProgress(tasks)
	p.UpdatedAt = domain.Stamp(c.now())
	c.project = &p
	c.markEdited()
}

// --- undo / redo ---

// Undo reverts the most recent task operation. It reports false when the
// log is empty. The revert itself never lands back on the undo stack.
func (c *Controller) Undo() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return false, ErrNoProject
	}
	item, ok := c.History.Undo()
	if !ok {
		return false, nil
	}
	c.applyItem(item, true)
	return true, nil
}

// Redo re-applies the most recently undone operation.
func (c *Controller) Redo() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return false, ErrNoProject
	}
	item, ok := c.History.Redo()
	if !ok {
		return false, nil
	}
	c.applyItem(item, false)
	return true, nil
}

func (c *Controller) applyItem(item undo.Item, reverse bool) {
	tasks := c.project.Tasks
	switch item.Kind {
	case undo.KindCreateTask:
		if reverse {
			tasks = removeTask(tasks, item.TargetID)
		} else {
			tasks = appendTask(tasks, *item.After)
		}
	case undo.KindDeleteTask:
		if reverse {
			tasks = appendTask(tasks, *item.Before)
		} else {
			tasks = removeTask(tasks, item.TargetID)
		}
	case undo.KindEditTask, undo.KindAssignResource:
		if reverse {
			tasks = replaceTask(tasks, *item.Before)
		} else {
			tasks = replaceTask(tasks, *item.After)
		}
	}
	c.applyTasks(tasks)
}

// --- resources ---

func (c *Controller) AddResource(r domain.Resource) (domain.Resource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return domain.Resource{}, ErrNoProject
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if err := domain.ValidateResource(r); err != nil {
		return domain.Resource{}, fmt.Errorf("invalid resource: %w", err)
	}
	p := *c.project
	p.Resources = append(append([]domain.Resource(nil), p.Resources...), r)
	c.install(p)
	return r, nil
}

func (c *Controller) UpdateResource(r domain.Resource) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return ErrNoProject
	}
	if err := domain.ValidateResource(r); err != nil {
		return fmt.Errorf("invalid resource: %w", err)
	}
	next := make([]domain.Resource, 0, len(c.project.Resources))
	found := false
	for _, cur := range c.project.Resources {
		if cur.ID == r.ID {
			cur = r
			found = true
		}
		next = append(next, cur)
	}
	if !found {
		return fmt.Errorf("resource %s: %w", r.ID, ErrNotFound)
	}
	p := *c.project
	p.Resources = next
	c.install(p)
	return nil
}

func (c *Controller) DeleteResource(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return ErrNoProject
	}
	next := make([]domain.Resource, 0, len(c.project.Resources))
	for _, cur := range c.project.Resources {
		if cur.ID != id {
			next = append(next, cur)
		}
	}
	if len(next) == len(c.project.Resources) {
		return fmt.Errorf("resource %s: %w", id, ErrNotFound)
	}
	p := *c.project
	p.Resources = next
	c.install(p)
	return nil
}

// --- budget ---

// AddBudgetCategory appends a category and atomically recomputes the
// budget totals.
func (c *Controller) AddBudgetCategory(cat domain.BudgetCategory) (domain.BudgetCategory, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return domain.BudgetCategory{}, ErrNoProject
	}
	if cat.ID == "" {
		cat.ID = uuid.New().String()
	}
	if err := domain.ValidateBudgetCategory(cat); err != nil {
		return domain.BudgetCategory{}, fmt.Errorf("invalid budget category: %w", err)
	}
	cats := append(append([]domain.BudgetCategory(nil), c.project.Budget.Categories...), cat)
	c.installBudget(cats)
	return cat, nil
}

func (c *Controller) UpdateBudgetCategory(cat domain.BudgetCategory) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return ErrNoProject
	}
	if err := domain.ValidateBudgetCategory(cat); err != nil {
		return fmt.Errorf("invalid budget category: %w", err)
	}
	cats := make([]domain.BudgetCategory, 0, len(c.project.Budget.Categories))
	found := false
	for _, cur := range c.project.Budget.Categories {
		if cur.ID == cat.ID {
			cur = cat
			found = true
		}
		cats = append(cats, cur)
	}
	if !found {
		return fmt.Errorf("budget category %s: %w", cat.ID, ErrNotFound)
	}
	c.installBudget(cats)
	return nil
}

func (c *Controller) DeleteBudgetCategory(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return ErrNoProject
	}
	cats := make([]domain.BudgetCategory, 0, len(c.project.Budget.Categories))
	for _, cur := range c.project.Budget.Categories {
		if cur.ID != id {
			cats = append(cats, cur)
		}
	}
	if len(cats) == len(c.project.Budget.Categories) {
		return fmt.Errorf("budget category %s: %w", id, ErrNotFound)
	}
	c.installBudget(cats)
	return nil
}

func (c *Controller) installBudget(cats []domain.BudgetCategory) {
	p := *c.project
	p.Budget = domain.RecalcBudget(cats, p.Budget.Currency)
	c.install(p)
}

// --- cost ledger ---

func (c *Controller) AddCostItem(item domain.CostItem) (domain.CostItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return domain.CostItem{}, ErrNoProject
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	p := *c.project
	p.Costs = append(append([]domain.CostItem(nil), p.Costs...), item)
	c.install(p)
	return item, nil
}

func (c *Controller) DeleteCostItem(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return ErrNoProject
	}
	next := make([]domain.CostItem, 0, len(c.project.Costs))
	for _, cur := range c.project.Costs {
		if cur.ID != id {
			next = append(next, cur)
		}
	}
	if len(next) == len(c.project.Costs) {
		return fmt.Errorf("cost item %s: %w", id, ErrNotFound)
	}
	p := *c.project
	p.Costs = next
	c.install(p)
	return nil
}

// --- risks ---

func (c *Controller) AddRisk(r domain.Risk) (domain.Risk, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return domain.Risk{}, ErrNoProject
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if err := domain.ValidateRisk(r); err != nil {
		return domain.Risk{}, fmt.Errorf("invalid risk: %w", err)
	}
	p := *c.project
	p.Risks = append(append([]domain.Risk(nil), p.Risks...), r)
	c.install(p)
	return r, nil
}

func (c *Controller) DeleteRisk(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return ErrNoProject
	}
	next := make([]domain.Risk, 0, len(c.project.Risks))
	for _, cur := range c.project.Risks {
		if cur.ID != id {
			next = append(next, cur)
		}
	}
	if len(next) == len(c.project.Risks) {
		return fmt.Errorf("risk %s: %w", id, ErrNotFound)
	}
	p := *c.project
	p.Risks = next
	c.install(p)
	return nil
}

// --- project-level fields ---

// Rename sets the project name.
func (c *Controller) Rename(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return ErrNoProject
	}
	p := *c.project
	p.Name = name
	c.install(p)
	return nil
}

// install swaps in a new project value, stamping updatedAt and applying
// the edit transition. Callers hold the lock.
func (c *Controller) install(p domain.Project) {
	p.UpdatedAt = domain.Stamp(c.now())
	c.project = &p
	c.markEdited()
}

// --- slice helpers ---

func findTask(tasks []domain.Task, id string) (domain.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

func appendTask(tasks []domain.Task, t domain.Task) []domain.Task {
	return append(append([]domain.Task(nil), tasks...), t)
}

func replaceTask(tasks []domain.Task, t domain.Task) []domain.Task {
	next := make([]domain.Task, 0, len(tasks))
	for _, cur := range tasks {
		if cur.ID == t.ID {
			cur = t
		}
		next = append(next, cur)
	}
	return next
}

func removeTask(tasks []domain.Task, id string) []domain.Task {
	next := make([]domain.Task, 0, len(tasks))
	for _, cur := range tasks {
		if cur.ID != id {
			next = append(next, cur)
		}
	}
	return next
}
