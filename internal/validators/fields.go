package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldName targets the display name of a registering user.
	FieldName = "name"

	// FieldEmail targets the login email.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a request.
	FieldPassword = "password"

	// FieldProjectID targets the identifier of an existing project.
	FieldProjectID = "project_id"

	// FieldOwnerID targets the owning user of a project.
	FieldOwnerID = "owner_id"
)
