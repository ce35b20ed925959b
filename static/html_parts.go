package static

// Страница собирается из трех частей: Part1 + график + Part2 + логи + Part3.
var (
	Part1 = `
    <!DOCTYPE html>
    <html>
    <head>
        <meta charset="utf-8">
        <title>DBSCAN</title>
        <style>
            body {
                background-color: #1F1F1F;
                color: #d3d3d3;
                font-family: Consolas, monospace;
                overflow: hidden;
            }

            #container {
                display: flex;
                width: 100%;
                height: 100vh;
                box-sizing: border-box;
            }

            #left-container, #right-container {
                width: 50%;
                padding: 10px;
                box-sizing: border-box;
            }

            #right-container {
                border-left: 5px solid #757575;
                overflow: auto;
                background-color: #1e1e1e;
            }

            #logs {
                white-space: pre-wrap;
                word-wrap: break-word;
            }

            .row {
                display: inline-block;
                margin-right: 12px;
            }

            input, select {
                width: 90px;
                background-color: #2b2b2b;
                color: #d3d3d3;
                border: 1px solid #444;
                padding: 5px;
                margin: 5px 0;
                border-radius: 4px;
            }

            input[type="submit"]:hover {
                background-color: #444;
                cursor: pointer;
            }

            .error {
                color: #ff6b6b;
            }

            ::-webkit-scrollbar { width: 8px; }
            ::-webkit-scrollbar-thumb { background-color: #444; border-radius: 10px; }
            ::-webkit-scrollbar-track { background-color: #2b2b2b; }
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Кластеризация DBSCAN</h1>
                <form id="dbscan-form" method="POST">
                    <div class="row"><label for="points">Точек (n):</label><br>
                    <input type="number" id="points" name="points" value="1000" min="0" max="20000"></div>
                    <div class="row"><label for="min">Мин. координата:</label><br>
                    <input type="number" id="min" name="min" value="-100" step="any"></div>
                    <div class="row"><label for="max">Макс. координата:</label><br>
                    <input type="number" id="max" name="max" value="100" step="any"></div>
                    <div class="row"><label for="decimals">Знаков:</label><br>
                    <input type="number" id="decimals" name="decimals" value="2" min="0" max="15"></div>
                    <br>
                    <div class="row"><label for="epsilon">Радиус (ε):</label><br>
                    <input type="number" id="epsilon" name="epsilon" value="5" step="any"></div>
                    <div class="row"><label for="minpts">Мин. соседей:</label><br>
                    <input type="number" id="minpts" name="minpts" value="5" min="0"></div>
                    <div class="row"><label for="dataset">Набор:</label><br>
                    <select id="dataset" name="dataset">
                        <option value="random" selected>случайный</option>
                        <option value="grid">сетка</option>
                    </select></div>
                    <div class="row"><br><input type="submit" value="Построить"></div>
                </form>
    `

	Part2 = `
            </div>
            <div id="right-container">
                <h1>Логи</h1>
                <div id="logs">`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            document.getElementById('dbscan-form').addEventListener('submit', function (e) {
                e.preventDefault();
                const params = new URLSearchParams(new FormData(this)).toString();

                fetch('/', {
                    method: 'POST',
                    body: params,
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => response.text())
                .then(html => {
                    document.open();
                    document.write(html);
                    document.close();
                })
                .catch(error => {
                    console.error('Ошибка:', error);
                });
            });
        </script>
    </body>
    </html>
    `
)
