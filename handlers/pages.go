package handlers

import "net/http"

// The pages are deliberately plain: the service is consumed through the
// JSON API, these exist so browser navigation and the login redirect land
// somewhere.

const loginPage = `<!DOCTYPE html>
<html>
<head><title>Login - Secure Notes</title></head>
<body>
<h1>Login</h1>
<form method="post" action="/login">
<label>Username <input name="username" required></label>
<label>Password <input name="password" type="password" required></label>
<button type="submit">Login</button>
</form>
<p>No account? <a href="/register">Register</a></p>
</body>
</html>
`

const registerPage = `<!DOCTYPE html>
<html>
<head><title>Register - Secure Notes</title></head>
<body>
<h1>Register</h1>
<form method="post" action="/register">
<label>Username <input name="username" required></label>
<label>Password <input name="password" type="password" required></label>
<button type="submit">Register</button>
</form>
<p>Already registered? <a href="/login">Login</a></p>
</body>
</html>
`

const dashboardPage = `<!DOCTYPE html>
<html>
<head><title>Dashboard - Secure Notes</title></head>
<body>
<h1>Your Notes</h1>
<p>Use the <code>/api/notes</code> endpoints to manage notes.</p>
<p><a href="/logout">Logout</a></p>
</body>
</html>
`

func servePage(w http.ResponseWriter, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(page))
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	servePage(w, loginPage)
}

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	servePage(w, registerPage)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	servePage(w, dashboardPage)
}
