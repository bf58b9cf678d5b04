package flaskgui

import "html/template"

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Darbot Flask GUI</title>
    <style>
        body {
            font-family: 'Arial', sans-serif;
            background-color: #1a1a1a;
            color: #e0e0e0;
            margin: 0;
            padding: 20px;
            line-height: 1.6;
        }
        h1 {
            color: #00aaff;
        }
        .container {
            max-width: 800px;
            margin: 0 auto;
            background-color: #252525;
            padding: 20px;
            border-radius: 5px;
            box-shadow: 0 0 10px rgba(0,0,0,0.5);
        }
        .status {
            padding: 10px;
            background-color: #0055aa;
            color: white;
            border-radius: 3px;
            margin-top: 20px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Darbot Flask GUI</h1>
        <p>This is a mock Flask GUI for testing LANton integration.</p>
        <div class="status">
            <p>Server is running on port: {{ .Port }}</p>
            <p>Managed by LANton - Port assigned dynamically</p>
        </div>
    </div>
</body>
</html>
`))

type page struct {
	Port string
}
