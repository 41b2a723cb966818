// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"stageline.io/stageline/ent/clientorg"
	"stageline.io/stageline/ent/invoice"
	"stageline.io/stageline/ent/notification"
	"stageline.io/stageline/ent/project"
	"stageline.io/stageline/ent/schema"
	"stageline.io/stageline/ent/stageevent"
	"stageline.io/stageline/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	clientorgMixin := schema.ClientOrg{}.Mixin()
	clientorgMixinFields0 := clientorgMixin[0].Fields()
	_ = clientorgMixinFields0
	clientorgFields := schema.ClientOrg{}.Fields()
	_ = clientorgFields
	// clientorgDescCreatedAt is the schema descriptor for created_at field.
	clientorgDescCreatedAt := clientorgMixinFields0[0].Descriptor()
	// clientorg.DefaultCreatedAt holds the default value on creation for the created_at field.
	clientorg.DefaultCreatedAt = clientorgDescCreatedAt.Default.(func() time.Time)
	// clientorgDescUpdatedAt is the schema descriptor for updated_at field.
	clientorgDescUpdatedAt := clientorgMixinFields0[1].Descriptor()
	// clientorg.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clientorg.DefaultUpdatedAt = clientorgDescUpdatedAt.Default.(func() time.Time)
	// clientorg.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clientorg.UpdateDefaultUpdatedAt = clientorgDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clientorgDescTenantAccountID is the schema descriptor for tenant_account_id field.
	clientorgDescTenantAccountID := clientorgFields[1].Descriptor()
	// clientorg.TenantAccountIDValidator is a validator for the "tenant_account_id" field. It is called by the builders before save.
	clientorg.TenantAccountIDValidator = clientorgDescTenantAccountID.Validators[0].(func(string) error)
	// clientorgDescName is the schema descriptor for name field.
	clientorgDescName := clientorgFields[2].Descriptor()
	// clientorg.NameValidator is a validator for the "name" field. It is called by the builders before save.
	clientorg.NameValidator = clientorgDescName.Validators[0].(func(string) error)
	// clientorgDescArchived is the schema descriptor for archived field.
	clientorgDescArchived := clientorgFields[3].Descriptor()
	// clientorg.DefaultArchived holds the default value on creation for the archived field.
	clientorg.DefaultArchived = clientorgDescArchived.Default.(bool)
	invoiceMixin := schema.Invoice{}.Mixin()
	invoiceMixinFields0 := invoiceMixin[0].Fields()
	_ = invoiceMixinFields0
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceMixinFields0[0].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceMixinFields0[1].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescProjectID is the schema descriptor for project_id field.
	invoiceDescProjectID := invoiceFields[1].Descriptor()
	// invoice.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	invoice.ProjectIDValidator = invoiceDescProjectID.Validators[0].(func(string) error)
	// invoiceDescAmount is the schema descriptor for amount field.
	invoiceDescAmount := invoiceFields[3].Descriptor()
	// invoice.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	invoice.AmountValidator = invoiceDescAmount.Validators[0].(func(float64) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescUpdatedAt is the schema descriptor for updated_at field.
	notificationDescUpdatedAt := notificationMixinFields0[1].Descriptor()
	// notification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notification.DefaultUpdatedAt = notificationDescUpdatedAt.Default.(func() time.Time)
	// notification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notification.UpdateDefaultUpdatedAt = notificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationDescRecipientID is the schema descriptor for recipient_id field.
	notificationDescRecipientID := notificationFields[1].Descriptor()
	// notification.RecipientIDValidator is a validator for the "recipient_id" field. It is called by the builders before save.
	notification.RecipientIDValidator = notificationDescRecipientID.Validators[0].(func(string) error)
	// notificationDescKind is the schema descriptor for kind field.
	notificationDescKind := notificationFields[2].Descriptor()
	// notification.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	notification.KindValidator = notificationDescKind.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[7].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	projectMixin := schema.Project{}.Mixin()
	projectMixinFields0 := projectMixin[0].Fields()
	_ = projectMixinFields0
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectMixinFields0[0].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectMixinFields0[1].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescClientID is the schema descriptor for client_id field.
	projectDescClientID := projectFields[2].Descriptor()
	// project.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	project.ClientIDValidator = projectDescClientID.Validators[0].(func(string) error)
	// projectDescTenantAccountID is the schema descriptor for tenant_account_id field.
	projectDescTenantAccountID := projectFields[3].Descriptor()
	// project.TenantAccountIDValidator is a validator for the "tenant_account_id" field. It is called by the builders before save.
	project.TenantAccountIDValidator = projectDescTenantAccountID.Validators[0].(func(string) error)
	// projectDescArchived is the schema descriptor for archived field.
	projectDescArchived := projectFields[6].Descriptor()
	// project.DefaultArchived holds the default value on creation for the archived field.
	project.DefaultArchived = projectDescArchived.Default.(bool)
	stageeventMixin := schema.StageEvent{}.Mixin()
	stageeventMixinFields0 := stageeventMixin[0].Fields()
	_ = stageeventMixinFields0
	stageeventFields := schema.StageEvent{}.Fields()
	_ = stageeventFields
	// stageeventDescCreatedAt is the schema descriptor for created_at field.
	stageeventDescCreatedAt := stageeventMixinFields0[0].Descriptor()
	// stageevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	stageevent.DefaultCreatedAt = stageeventDescCreatedAt.Default.(func() time.Time)
	// stageeventDescProjectID is the schema descriptor for project_id field.
	stageeventDescProjectID := stageeventFields[1].Descriptor()
	// stageevent.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	stageevent.ProjectIDValidator = stageeventDescProjectID.Validators[0].(func(string) error)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[2].Descriptor()
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = userDescDisplayName.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescActive is the schema descriptor for active field.
	userDescActive := userFields[6].Descriptor()
	// user.DefaultActive holds the default value on creation for the active field.
	user.DefaultActive = userDescActive.Default.(bool)
}
