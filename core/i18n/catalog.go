package i18n

type entry struct {
	key string
	es  string
	en  string
}

var catalog = []entry{
	{"app.title", "Teacher Notebook", "Teacher Notebook"},

	{"login.subtitle", "Tu espacio educativo digital", "Your digital educational space"},
	{"login.username", "Usuario", "Username"},
	{"login.password", "Contraseña", "Password"},
	{"login.welcome", "Bienvenido/a", "Welcome"},
	{"login.errors.emptyFields", "Por favor completa todos los campos.", "Please fill in all fields."},
	{"login.errors.loginFailed", "Error en el login.", "Login error."},
	{"login.errors.sessionExpired", "Tu sesión ha expirado. Por favor, inicia sesión nuevamente.", "Your session has expired. Please log in again."},
	{"login.errors.invalidCredentials", "Verifica tus credenciales.", "Check your credentials."},
	{"login.errors.authError", "Se ha producido un error al autenticar", "An authentication error has occurred"},

	{"dashboard.logout", "Cerrar Sesión", "Log Out"},
	{"dashboard.refresh", "Actualizar", "Refresh"},
	{"dashboard.weeklyTimetable", "Horario Semanal", "Weekly Timetable"},
	{"dashboard.loadingData", "Cargando datos...", "Loading data..."},
	{"dashboard.classes.noClasses", "No hay clases programadas", "No classes scheduled"},
	{"dashboard.classes.createSuccess", "Clase creada exitosamente", "Class created successfully"},
	{"dashboard.classes.updateSuccess", "Clase actualizada exitosamente", "Class updated successfully"},
	{"dashboard.classes.deleteSuccess", "Clase eliminada exitosamente", "Class deleted successfully"},
	{"dashboard.schools.title", "Gestión de Colegios", "School Management"},
	{"dashboard.schools.list", "Lista de Colegios", "School List"},
	{"dashboard.schools.name", "Nombre", "Name"},
	{"dashboard.schools.town", "Localidad", "Town"},
	{"dashboard.schools.phone", "Teléfono", "Phone"},
	{"dashboard.schools.noSchools", "No hay colegios registrados", "No schools registered"},
	{"dashboard.schools.createSuccess", "Colegio creado exitosamente", "School created successfully"},
	{"dashboard.schools.updateSuccess", "Colegio actualizado exitosamente", "School updated successfully"},
	{"dashboard.schools.deleteSuccess", "Colegio eliminado exitosamente", "School deleted successfully"},
	{"dashboard.errors.loadSchoolsError", "Error al cargar los colegios. Por favor, inténtalo de nuevo.", "Error loading schools. Please try again."},

	{"common.error", "Error", "Error"},
	{"common.success", "Éxito", "Success"},
	{"common.tooltip.switchToEnglish", "Cambiar a Inglés", "Switch to English"},
	{"common.tooltip.switchToSpanish", "Cambiar a Español", "Switch to Spanish"},
}
