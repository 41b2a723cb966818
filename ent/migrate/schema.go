// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClientOrgsColumns holds the columns for the "client_orgs" table.
	ClientOrgsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_account_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "archived", Type: field.TypeBool, Default: false},
	}
	// ClientOrgsTable holds the schema information for the "client_orgs" table.
	ClientOrgsTable = &schema.Table{
		Name:       "client_orgs",
		Columns:    ClientOrgsColumns,
		PrimaryKey: []*schema.Column{ClientOrgsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clientorg_tenant_account_id",
				Unique:  false,
				Columns: []*schema.Column{ClientOrgsColumns[3]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "quote", "sent", "overdue", "paid", "cancelled"}, Default: "draft"},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "issued_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_projects_invoices",
				Columns:    []*schema.Column{InvoicesColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_project_id",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[6]},
			},
			{
				Name:    "invoice_status",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[3]},
			},
			{
				Name:    "invoice_issued_at",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[5]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "recipient_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_recipient_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[9]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "tenant_account_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"backlog", "call_arranged", "brief_gathered", "build", "ui_stage", "db_stage", "auth_stage", "qa", "handover", "closed"}, Default: "backlog"},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "client_id", Type: field.TypeString},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_client_orgs_projects",
				Columns:    []*schema.Column{ProjectsColumns[8]},
				RefColumns: []*schema.Column{ClientOrgsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "project_tenant_account_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[4]},
			},
			{
				Name:    "project_client_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[8]},
			},
			{
				Name:    "project_status",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[5]},
			},
			{
				Name:    "project_due_date",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[6]},
			},
		},
	}
	// StageEventsColumns holds the columns for the "stage_events" table.
	StageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "from_status", Type: field.TypeEnum, Nullable: true, Enums: []string{"backlog", "call_arranged", "brief_gathered", "build", "ui_stage", "db_stage", "auth_stage", "qa", "handover", "closed"}},
		{Name: "to_status", Type: field.TypeEnum, Enums: []string{"backlog", "call_arranged", "brief_gathered", "build", "ui_stage", "db_stage", "auth_stage", "qa", "handover", "closed"}},
		{Name: "changed_by", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// StageEventsTable holds the schema information for the "stage_events" table.
	StageEventsTable = &schema.Table{
		Name:       "stage_events",
		Columns:    StageEventsColumns,
		PrimaryKey: []*schema.Column{StageEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stage_events_projects_stage_events",
				Columns:    []*schema.Column{StageEventsColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stageevent_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[5], StageEventsColumns[1]},
			},
			{
				Name:    "stageevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"member", "client"}, Default: "client"},
		{Name: "tenant_account_id", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_tenant_account_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
		},
	}
	// UserClientOrgsColumns holds the columns for the "user_client_orgs" table.
	UserClientOrgsColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString},
		{Name: "client_org_id", Type: field.TypeString},
	}
	// UserClientOrgsTable holds the schema information for the "user_client_orgs" table.
	UserClientOrgsTable = &schema.Table{
		Name:       "user_client_orgs",
		Columns:    UserClientOrgsColumns,
		PrimaryKey: []*schema.Column{UserClientOrgsColumns[0], UserClientOrgsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_client_orgs_user_id",
				Columns:    []*schema.Column{UserClientOrgsColumns[0]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "user_client_orgs_client_org_id",
				Columns:    []*schema.Column{UserClientOrgsColumns[1]},
				RefColumns: []*schema.Column{ClientOrgsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClientOrgsTable,
		InvoicesTable,
		NotificationsTable,
		ProjectsTable,
		StageEventsTable,
		UsersTable,
		UserClientOrgsTable,
	}
)

func init() {
	InvoicesTable.ForeignKeys[0].RefTable = ProjectsTable
	ProjectsTable.ForeignKeys[0].RefTable = ClientOrgsTable
	StageEventsTable.ForeignKeys[0].RefTable = ProjectsTable
	UserClientOrgsTable.ForeignKeys[0].RefTable = UsersTable
	UserClientOrgsTable.ForeignKeys[1].RefTable = ClientOrgsTable
}
