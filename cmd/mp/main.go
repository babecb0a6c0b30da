package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"masterplan/internal/config"
	"masterplan/internal/domain"
	"masterplan/internal/session"
	"masterplan/internal/snapshot"
	"masterplan/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "mp",
	Short: "MasterPlan CLI",
	Long: `MasterPlan manages project plans stored as .mpproj package files.
A package is a zip archive holding the project manifest plus one JSON member
per collection (tasks, resources, milestones, teams, budget, costs, risks).
Commands open the package named by --file, apply the change, and save it
back. Snapshots land in the data directory and can be listed and restored;
'mp recover' restores the latest crash-recovery snapshot.`,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("MASTERPLAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("file", "f", "", "project package path (.mpproj)")
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory")
	rootCmd.PersistentFlags().String("data-dir", "", "application data directory")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level")
	_ = viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("data-dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func registerCommands() {
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(taskCmd())
	rootCmd.AddCommand(resourceCmd())
	rootCmd.AddCommand(budgetCmd())
	rootCmd.AddCommand(costCmd())
	rootCmd.AddCommand(riskCmd())
	rootCmd.AddCommand(snapshotCmd())
	rootCmd.AddCommand(recoverCmd())
	rootCmd.AddCommand(recentCmd())
}

// pathPicker satisfies the session file dialogs with the --file flag.
type pathPicker struct {
	path string
}

func (p pathPicker) SavePath() (string, error) { return p.path, nil }
func (p pathPicker) OpenPath() (string, error) { return p.path, nil }

func newSession() (*session.Controller, error) {
	cfg, err := config.Load(viper.GetString("workspace"))
	if err != nil {
		return nil, err
	}
	store, err := storage.NewOS(viper.GetString("data-dir"))
	if err != nil {
		return nil, err
	}
	return session.New(store, cfg, pathPicker{path: viper.GetString("file")}), nil
}

// withProject opens the package named by --file, runs fn, and saves the
// result back when fn reports the document changed.
func withProject(fn func(c *session.Controller) error) error {
	path := viper.GetString("file")
	if path == "" {
		return fmt.Errorf("--file required")
	}
	c, err := newSession()
	if err != nil {
		return err
	}
	if _, err := c.OpenPath(path); err != nil {
		return err
	}
	if err := fn(c); err != nil {
		return err
	}
	if c.HasUnsavedChanges() {
		if _, err := c.Save(); err != nil {
			return err
		}
	}
	return nil
}

func projectCmd() *cobra.Command {
	prj := &cobra.Command{Use: "project", Short: "Manage the project document"}
	prj.AddCommand(projectNewCmd())
	prj.AddCommand(projectShowCmd())
	prj.AddCommand(projectRenameCmd())
	return prj
}

func projectNewCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a project package",
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetString("file") == "" {
				return fmt.Errorf("--file required")
			}
			c, err := newSession()
			if err != nil {
				return err
			}
			c.NewProject()
			if name != "" {
				if err := c.Rename(name); err != nil {
					return err
				}
			}
			path, err := c.Save()
			if err != nil {
				return err
			}
			fmt.Println("created", path)
			return printJSONOrTable(c.Project())
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "project name")
	return cmd
}

func projectShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the project",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString("file")
			if path == "" {
				return fmt.Errorf("--file required")
			}
			c, err := newSession()
			if err != nil {
				return err
			}
			p, err := c.OpenPath(path)
			if err != nil {
				return err
			}
			return printJSONOrTable(p)
		},
	}
	return cmd
}

func projectRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <name>",
		Short: "Rename the project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				return c.Rename(args[0])
			})
		},
	}
	return cmd
}

func taskCmd() *cobra.Command {
	t := &cobra.Command{Use: "task", Short: "Manage tasks"}
	t.AddCommand(taskListCmd())
	t.AddCommand(taskAddCmd())
	t.AddCommand(taskUpdateCmd())
	t.AddCommand(taskDeleteCmd())
	t.AddCommand(taskAssignCmd())
	return t
}

func taskListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				tasks := c.Project().Tasks
				if viper.GetBool("json") {
					return printJSON(tasks)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Name", "Status", "Priority", "Assigned"})
				for _, t := range tasks {
					tw.AppendRow(table.Row{t.ID, t.Name, t.Status, t.Priority, strings.Join(t.AssignedTo, ",")})
				}
				tw.Render()
				return nil
			})
		},
	}
	return cmd
}

func taskAddCmd() *cobra.Command {
	var t domain.Task
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				added, err := c.AddTask(t)
				if err != nil {
					return err
				}
				return printJSONOrTable(added)
			})
		},
	}
	cmd.Flags().StringVar(&t.Name, "name", "", "task name")
	cmd.Flags().StringVar(&t.Description, "description", "", "description")
	cmd.Flags().StringVar(&t.StartDate, "start", "", "start date (RFC3339)")
	cmd.Flags().StringVar(&t.EndDate, "end", "", "end date (RFC3339)")
	cmd.Flags().StringVar(&t.Status, "status", "", "status (not-started, in-progress, completed, delayed)")
	cmd.Flags().StringVar(&t.Priority, "priority", "", "priority (low, medium, high, urgent)")
	cmd.Flags().StringVar(&t.MilestoneID, "milestone", "", "milestone id")
	cmd.Flags().BoolVar(&t.IsMilestone, "is-milestone", false, "mark as milestone task")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func taskUpdateCmd() *cobra.Command {
	var id string
	var name, status, priority, notes string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				p := c.Project()
				var cur *domain.Task
				for i := range p.Tasks {
					if p.Tasks[i].ID == id {
						cur = &p.Tasks[i]
						break
					}
				}
				if cur == nil {
					return fmt.Errorf("task %s: %w", id, session.ErrNotFound)
				}
				t := *cur
				if cmd.Flags().Changed("name") {
					t.Name = name
				}
				if cmd.Flags().Changed("status") {
					t.Status = status
				}
				if cmd.Flags().Changed("priority") {
					t.Priority = priority
				}
				if cmd.Flags().Changed("notes") {
					t.Notes = notes
				}
				if err := c.UpdateTask(t); err != nil {
					return err
				}
				return printJSONOrTable(t)
			})
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "task id")
	cmd.Flags().StringVar(&name, "name", "", "task name")
	cmd.Flags().StringVar(&status, "status", "", "status")
	cmd.Flags().StringVar(&priority, "priority", "", "priority")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func taskDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				return c.DeleteTask(args[0])
			})
		},
	}
	return cmd
}

func taskAssignCmd() *cobra.Command {
	var resources []string
	cmd := &cobra.Command{
		Use:   "assign <task-id>",
		Short: "Assign resources to a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				return c.AssignResources(args[0], resources)
			})
		},
	}
	cmd.Flags().StringSliceVar(&resources, "resources", nil, "resource ids")
	return cmd
}

func resourceCmd() *cobra.Command {
	r := &cobra.Command{Use: "resource", Short: "Manage resources"}
	r.AddCommand(resourceListCmd())
	r.AddCommand(resourceAddCmd())
	r.AddCommand(resourceDeleteCmd())
	return r
}

func resourceListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				resources := c.Project().Resources
				if viper.GetBool("json") {
					return printJSON(resources)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Name", "Type", "Role", "Cost"})
				for _, r := range resources {
					tw.AppendRow(table.Row{r.ID, r.Name, r.Type, r.Role, r.Cost})
				}
				tw.Render()
				return nil
			})
		},
	}
	return cmd
}

func resourceAddCmd() *cobra.Command {
	var r domain.Resource
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				added, err := c.AddResource(r)
				if err != nil {
					return err
				}
				return printJSONOrTable(added)
			})
		},
	}
	cmd.Flags().StringVar(&r.Name, "name", "", "resource name")
	cmd.Flags().StringVar(&r.Type, "type", domain.ResourceHuman, "type (human, material, equipment)")
	cmd.Flags().StringVar(&r.Email, "email", "", "email")
	cmd.Flags().StringVar(&r.Role, "role", "", "role")
	cmd.Flags().Float64Var(&r.Cost, "cost", 0, "hourly cost")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func resourceDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				return c.DeleteResource(args[0])
			})
		},
	}
	return cmd
}

func budgetCmd() *cobra.Command {
	b := &cobra.Command{Use: "budget", Short: "Manage the budget"}
	b.AddCommand(budgetShowCmd())
	b.AddCommand(budgetAddCmd())
	b.AddCommand(budgetDeleteCmd())
	return b
}

func budgetShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show budget totals and categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				b := c.Project().Budget
				if viper.GetBool("json") {
					return printJSON(b)
				}
				fmt.Printf("total=%.2f spent=%.2f remaining=%.2f %s\n", b.Total, b.Spent, b.Remaining, b.Currency)
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Name", "Planned", "Actual"})
				for _, cat := range b.Categories {
					tw.AppendRow(table.Row{cat.ID, cat.Name, cat.Planned, cat.Actual})
				}
				tw.Render()
				return nil
			})
		},
	}
	return cmd
}

func budgetAddCmd() *cobra.Command {
	var cat domain.BudgetCategory
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a budget category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				added, err := c.AddBudgetCategory(cat)
				if err != nil {
					return err
				}
				return printJSONOrTable(added)
			})
		},
	}
	cmd.Flags().StringVar(&cat.Name, "name", "", "category name")
	cmd.Flags().Float64Var(&cat.Planned, "planned", 0, "planned amount")
	cmd.Flags().Float64Var(&cat.Actual, "actual", 0, "actual amount")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func budgetDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				return c.DeleteBudgetCategory(args[0])
			})
		},
	}
	return cmd
}

func costCmd() *cobra.Command {
	co := &cobra.Command{Use: "cost", Short: "Manage the cost ledger"}
	co.AddCommand(costListCmd())
	co.AddCommand(costAddCmd())
	co.AddCommand(costDeleteCmd())
	return co
}

func costListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cost items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				costs := c.Project().Costs
				if viper.GetBool("json") {
					return printJSON(costs)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Task", "Category", "Amount", "Status"})
				for _, item := range costs {
					tw.AppendRow(table.Row{item.ID, item.TaskID, item.Category, item.Amount, item.Status})
				}
				tw.Render()
				return nil
			})
		},
	}
	return cmd
}

func costAddCmd() *cobra.Command {
	var item domain.CostItem
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a cost item",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				added, err := c.AddCostItem(item)
				if err != nil {
					return err
				}
				return printJSONOrTable(added)
			})
		},
	}
	cmd.Flags().StringVar(&item.TaskID, "task", "", "task id")
	cmd.Flags().Float64Var(&item.Amount, "amount", 0, "amount")
	cmd.Flags().StringVar(&item.Category, "category", domain.CostOther, "category (personnel, equipment, other)")
	cmd.Flags().StringVar(&item.Currency, "currency", "USD", "currency")
	cmd.Flags().StringVar(&item.Date, "date", "", "date (RFC3339)")
	cmd.Flags().StringVar(&item.Status, "status", domain.CostPending, "status (pending, paid)")
	return cmd
}

func costDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a cost item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				return c.DeleteCostItem(args[0])
			})
		},
	}
	return cmd
}

func riskCmd() *cobra.Command {
	r := &cobra.Command{Use: "risk", Short: "Manage the risk log"}
	r.AddCommand(riskListCmd())
	r.AddCommand(riskAddCmd())
	r.AddCommand(riskDeleteCmd())
	return r
}

func riskListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List risks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				risks := c.Project().Risks
				if viper.GetBool("json") {
					return printJSON(risks)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Name", "Probability", "Impact", "Status"})
				for _, r := range risks {
					tw.AppendRow(table.Row{r.ID, r.Name, r.Probability, r.Impact, r.Status})
				}
				tw.Render()
				return nil
			})
		},
	}
	return cmd
}

func riskAddCmd() *cobra.Command {
	var r domain.Risk
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a risk",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				added, err := c.AddRisk(r)
				if err != nil {
					return err
				}
				return printJSONOrTable(added)
			})
		},
	}
	cmd.Flags().StringVar(&r.Name, "name", "", "risk name")
	cmd.Flags().StringVar(&r.Description, "description", "", "description")
	cmd.Flags().StringVar(&r.Probability, "probability", "", "probability (low, medium, high)")
	cmd.Flags().StringVar(&r.Impact, "impact", "", "impact (low, medium, high)")
	cmd.Flags().StringVar(&r.Mitigation, "mitigation", "", "mitigation plan")
	cmd.Flags().StringVar(&r.Owner, "owner", "", "owner")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func riskDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a risk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProject(func(c *session.Controller) error {
				return c.DeleteRisk(args[0])
			})
		},
	}
	return cmd
}

func snapshotCmd() *cobra.Command {
	s := &cobra.Command{Use: "snapshot", Short: "Manage project snapshots"}
	s.AddCommand(snapshotCreateCmd())
	s.AddCommand(snapshotListCmd())
	s.AddCommand(snapshotRestoreCmd())
	s.AddCommand(snapshotDeleteCmd())
	return s
}

func snapshotCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Capture a manual snapshot of the project",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString("file")
			if path == "" {
				return fmt.Errorf("--file required")
			}
			c, err := newSession()
			if err != nil {
				return err
			}
			p, err := c.OpenPath(path)
			if err != nil {
				return err
			}
			info, err := c.Snapshots.Create(*p, snapshot.TypeManual)
			if err != nil {
				return err
			}
			return printJSONOrTable(info)
		},
	}
	return cmd
}

func snapshotListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List snapshots of the project",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString("file")
			if path == "" {
				return fmt.Errorf("--file required")
			}
			c, err := newSession()
			if err != nil {
				return err
			}
			p, err := c.OpenPath(path)
			if err != nil {
				return err
			}
			infos, err := c.Snapshots.ForProject(p.ID)
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(infos)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Timestamp", "Type", "Path"})
			for _, info := range infos {
				tw.AppendRow(table.Row{info.Timestamp, info.Type, info.Path})
			}
			tw.Render()
			return nil
		},
	}
	return cmd
}

func snapshotRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <snapshot-path>",
		Short: "Restore a snapshot into the package named by --file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetString("file") == "" {
				return fmt.Errorf("--file required")
			}
			c, err := newSession()
			if err != nil {
				return err
			}
			if err := c.RestoreSnapshot(args[0]); err != nil {
				return err
			}
			saved, err := c.SaveAs()
			if err != nil {
				return err
			}
			fmt.Println("restored to", saved)
			return nil
		},
	}
	return cmd
}

func snapshotDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <snapshot-path>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSession()
			if err != nil {
				return err
			}
			return c.Snapshots.Delete(args[0])
		},
	}
	return cmd
}

func recoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Restore the latest crash-recovery snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetString("file") == "" {
				return fmt.Errorf("--file required")
			}
			c, err := newSession()
			if err != nil {
				return err
			}
			ok, err := c.RecoverLatest()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("nothing to recover")
				return nil
			}
			saved, err := c.SaveAs()
			if err != nil {
				return err
			}
			fmt.Println("recovered to", saved)
			return printJSONOrTable(c.Project())
		},
	}
	return cmd
}

func recentCmd() *cobra.Command {
	r := &cobra.Command{Use: "recent", Short: "Recently opened projects"}
	r.AddCommand(recentListCmd())
	r.AddCommand(recentRemoveCmd())
	return r
}

func recentListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recently opened projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSession()
			if err != nil {
				return err
			}
			entries := c.Recents.Entries()
			if viper.GetBool("json") {
				return printJSON(entries)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Name", "Path", "Opened"})
			for _, e := range entries {
				tw.AppendRow(table.Row{e.FileName, e.FilePath, e.OpenedAt})
			}
			tw.Render()
			return nil
		},
	}
	return cmd
}

func recentRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <path>",
		Short: "Remove an entry from the recent list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSession()
			if err != nil {
				return err
			}
			return c.Recents.RemoveByPath(args[0])
		},
	}
	return cmd
}

func printJSONOrTable(v any) error {
	if viper.GetBool("json") {
		return printJSON(v)
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
