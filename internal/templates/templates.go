// Package templates garde les pages HTML dans le code, comme le reste de
// l'application : un seul binaire, aucun fichier à déployer à côté.
package templates

import "html/template"

// Feuille de style partagée par toutes les pages.
const style = `
<style>
    body {
        font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
        background-color: #f0f2f5;
        padding: 20px;
        color: #333;
    }
    h1, h2 {
        color: #2c3e50;
        text-align: center;
    }
    .form-container {
        max-width: 400px;
        margin: 50px auto;
        background: white;
        padding: 20px;
        border-radius: 8px;
        box-shadow: 0 4px 8px rgba(0,0,0,0.1);
    }
    .form-container input, .form-container button {
        width: 100%;
        padding: 10px;
        margin: 8px 0;
        border-radius: 6px;
        border: 1px solid #ccc;
    }
    .form-container button {
        background-color: #3498db;
        color: white;
        border: none;
        cursor: pointer;
    }
    .catalogo {
        display: flex;
        gap: 20px;
        flex-wrap: wrap;
        justify-content: center;
        margin-top: 30px;
    }
    .card {
        background: white;
        padding: 15px;
        border-radius: 12px;
        box-shadow: 0 4px 8px rgba(0,0,0,0.1);
        text-align: center;
        width: 200px;
    }
    .card button {
        margin-top: 10px;
        padding: 8px;
        border: none;
        border-radius: 6px;
        background: #27ae60;
        color: white;
        cursor: pointer;
        width: 100%;
    }
    .carrito {
        max-width: 600px;
        margin: 30px auto;
        background: white;
        padding: 20px;
        border-radius: 12px;
        box-shadow: 0 4px 8px rgba(0,0,0,0.1);
    }
    .carrito input[type=number] { width: 60px; }
    .carrito button {
        padding: 6px 10px;
        border: none;
        border-radius: 6px;
        background: #3498db;
        color: white;
        cursor: pointer;
    }
    .carrito .quitar { background: #e74c3c; }
    .checkout-btn {
        display: block;
        width: 100%;
        margin-top: 15px;
        padding: 10px;
        border: none;
        border-radius: 6px;
        background: #27ae60;
        color: white;
        cursor: pointer;
    }
    table { width: 100%; border-collapse: collapse; }
    th, td { padding: 10px; border: 1px solid #ddd; }
    th { background: #3498db; color: white; }
</style>
`

const registerHTML = style + `
<!DOCTYPE html>
<html lang="es">
<head><meta charset="UTF-8"><title>Registro</title></head>
<body>
  <div class="form-container">
    <h2>Crear Cuenta</h2>
    <form method="post" action="/register">
      <input name="username" type="text" placeholder="Usuario" required>
      <input name="password" type="password" placeholder="Contraseña" required>
      <button type="submit">Registrarse</button>
    </form>
    <p>¿Ya tienes cuenta? <a href="/login">Iniciar sesión</a></p>
  </div>
</body>
</html>
`

const loginHTML = style + `
<!DOCTYPE html>
<html lang="es">
<head><meta charset="UTF-8"><title>Iniciar Sesión</title></head>
<body>
  <div class="form-container">
    <h2>Iniciar Sesión</h2>
    <form method="post" action="/login">
      <input name="username" type="text" placeholder="Usuario" required>
      <input name="password" type="password" placeholder="Contraseña" required>
      <button type="submit">Entrar</button>
    </form>
    <p>¿No tienes cuenta? <a href="/register">Regístrate</a></p>
  </div>
</body>
</html>
`

const indexHTML = style + `
<!DOCTYPE html>
<html lang="es">
<head><meta charset="UTF-8"><title>DungeonShelf</title></head>
<body>
  <h1>Bienvenido, {{ .Username }}</h1>
  <form action="/logout" method="get"><button>Cerrar sesión</button></form>
  <h2>Catálogo</h2>
  <div class="catalogo">
    {{ range .Comics }}
    <div class="card">
      <h3>{{ .IssueName }}</h3>
      <p>Precio: ${{ .Price }}</p>
      <form method="post" action="/agregar_carrito">
        <input type="hidden" name="issue_name" value="{{ .IssueName }}">
        <input type="hidden" name="price" value="{{ .Price }}">
        <button type="submit">Añadir al carrito</button>
      </form>
    </div>
    {{ end }}
  </div>
  <h2>Carrito</h2>
  <div class="carrito">
    <table>
      <tr><th>Cómic</th><th>Precio</th><th>Cantidad</th><th></th></tr>
      {{ range .Cart }}
      <tr>
        <td>{{ .IssueName }}</td>
        <td>${{ .Price }}</td>
        <td>
          <form method="post" action="/update_cart">
            <input type="hidden" name="issue_name" value="{{ .IssueName }}">
            <input type="number" name="quantity" value="{{ .Quantity }}" min="1">
            <button type="submit">Actualizar</button>
          </form>
        </td>
        <td>
          <form method="post" action="/remove_cart">
            <input type="hidden" name="issue_name" value="{{ .IssueName }}">
            <button type="submit" class="quitar">Quitar</button>
          </form>
        </td>
      </tr>
      {{ end }}
    </table>
    <p><strong>Total:</strong> ${{ .Total }}</p>
    <form method="post" action="/checkout">
      <button type="submit" class="checkout-btn">Finalizar compra</button>
    </form>
  </div>
</body>
</html>
`

const checkoutHTML = style + `
<!DOCTYPE html>
<html lang="es">
<head><meta charset="UTF-8"><title>Compra confirmada</title></head>
<body>
  <div class="form-container">
    <h2>¡Gracias por tu compra, {{ .Username }}!</h2>
    <p>Tu carrito ha sido vaciado.</p>
    <p><a href="/index">Volver al catálogo</a></p>
  </div>
</body>
</html>
`

const errorHTML = style + `
<!DOCTYPE html>
<html lang="es">
<head><meta charset="UTF-8"><title>Error</title></head>
<body>
  <h3 style="color:red;">{{ .Message }}</h3>
  <a href="{{ .BackURL }}">Volver</a>
</body>
</html>
`

// New construit le jeu de templates servi par gin.
func New() *template.Template {
	t := template.New("dungeonshelf")
	template.Must(t.New("register").Parse(registerHTML))
	template.Must(t.New("login").Parse(loginHTML))
	template.Must(t.New("index").Parse(indexHTML))
	template.Must(t.New("checkout").Parse(checkoutHTML))
	template.Must(t.New("error").Parse(errorHTML))
	return t
}
