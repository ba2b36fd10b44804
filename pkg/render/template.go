package render

// pageHTML is executed with text/template. Every string it prints has been
// escaped by Page, so the template itself performs no escaping.
const pageHTML = `{{define "expiry"}}<div class="detail-value {{.Class}}" id="{{.ElementID}}" data-context="{{.Context}}" data-alert="{{.AlertID}}"{{if .Raw}} data-expiry="{{.Raw}}"{{end}}>
                    {{.Display}}
                </div>
            </div>
            <div id="{{.AlertID}}" class="expiry-alert-container">{{if .AlertHref}}
                <a href="{{.AlertHref}}" class="btn btn-red">{{.AlertText}}</a>
            {{end}}</div>{{end}}<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>i-HIC - {{.Name}} Details</title>
    <style>
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body { padding: 15px; background-color: #f5f5f5; font-family: Arial, sans-serif; }
        .container { max-width: 100%; margin: 0 auto; background: white; border-radius: 10px; padding: 20px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header-container { text-align: center; margin-bottom: 20px; }
        .header-main { font-family: "Century Gothic", sans-serif; color: #0066cc; font-size: 24px; font-weight: 800; letter-spacing: 0.5px; margin-bottom: 5px; }
        .header-sub { font-family: "Century Gothic", sans-serif; color: #0066cc; font-size: 20px; font-weight: 800; letter-spacing: 1px; }
        .item-name { font-size: 22px; font-weight: bold; text-align: center; margin-bottom: 25px; color: #333; padding-bottom: 10px; border-bottom: 2px solid #0066cc; }
        .info-card { background: white; border-radius: 8px; padding: 15px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); border: 1px solid #e0e0e0; margin-bottom: 20px; }
        .card-title { font-weight: bold; color: #0066cc; margin-bottom: 15px; font-size: 18px; padding-bottom: 5px; border-bottom: 1px solid #e0e0e0; }
        .detail-row { display: flex; margin-bottom: 10px; align-items: center; padding-bottom: 10px; border-bottom: 1px solid #f0f0f0; }
        .detail-row:last-child { border-bottom: none; padding-bottom: 0; margin-bottom: 0; }
        .detail-label { font-weight: bold; width: 50%; color: #555; font-size: 16px; padding-right: 5px; }
        .detail-value { width: 50%; word-break: break-word; font-size: 16px; text-align: left; padding-left: 5px; }
        .cert-available { color: #27ae60; font-weight: bold; }
        .cert-not-available { color: #e74c3c; font-weight: bold; }
        .expired { color: #e74c3c; font-weight: bold; }
        .valid { color: #27ae60; font-weight: bold; }
        .na-value { color: #7f8c8d; font-style: italic; }
        .btn { display: inline-block; padding: 10px 12px; color: white; text-decoration: none; border-radius: 5px; text-align: center; font-size: 15px; border: none; cursor: pointer; width: 100%; margin-top: 8px; }
        .btn:hover { opacity: 0.9; }
        .btn-blue { background-color: #3498db; }
        .btn-green { background-color: #2ecc71; }
        .btn-purple { background-color: #9b59b6; }
        .btn-red { background-color: #e74c3c; margin: 15px 0 20px 0; }
        .expiry-alert-container { margin: 10px 0 5px 0; }
        .stock-request-box { background-color: #f8f9fa; padding: 15px; border-radius: 8px; margin-top: 20px; border: 1px solid #e0e0e0; text-align: left; }
        .quantity-input { width: 100%; padding: 12px; margin: 10px 0; border: 1px solid #ddd; border-radius: 5px; font-size: 16px; text-align: left; }
        .quantity-label { display: block; margin: 10px 0 5px; font-weight: bold; color: #333; font-size: 16px; text-align: left; }
        .quantity-error { color: #e74c3c; font-size: 14px; min-height: 1em; }
        .back-btn { display: block; text-align: center; margin-top: 20px; color: #3498db; text-decoration: none; font-weight: bold; font-size: 16px; }
        @media (min-width: 600px) {
            .container { max-width: 600px; }
            .header-main { font-size: 26px; }
            .header-sub { font-size: 22px; }
            .item-name { font-size: 24px; }
        }
    </style>
</head>
<body>
    <div class="container" id="itemPage" data-name="{{.Name}}" data-id="{{.ID}}" data-batch="{{.Batch}}" data-contact="{{.Contact}}">
        <div class="header-container">
            <div class="header-main">INSTANT HALAL &amp; INVENTORY CHECKER</div>
            <div class="header-sub">(i-HIC)</div>
        </div>
        <div class="item-name">{{.Name}}</div>

        <div class="info-card" id="productInfo">
            <div class="card-title">Product Info</div>
            <div class="detail-row">
                <div class="detail-label">Item ID:</div>
                <div class="detail-value">{{.ID}}</div>
            </div>
            <div class="detail-row">
                <div class="detail-label">Category:</div>
                <div class="detail-value">{{.Category}}</div>
            </div>
            <div class="detail-row">
                <div class="detail-label">Batch/GRIS No.:</div>
                <div class="detail-value">{{.Batch}}</div>
            </div>
            <div class="detail-row">
                <div class="detail-label">Brand:</div>
                <div class="detail-value">{{.Brand}}</div>
            </div>
            <div class="detail-row">
                <div class="detail-label">Supplier:</div>
                <div class="detail-value">{{.Supplier}}</div>
            </div>
            <div class="detail-row">
                <div class="detail-label">Item Expiry Date:</div>
                {{template "expiry" .Expiry}}
            <div class="detail-row">
                <div class="detail-label">Stock Available:</div>
                <div class="detail-value">{{.Stock}}</div>
            </div>
        </div>

        <div class="info-card" id="purchaseInfo">
            <div class="card-title">Purchase Info</div>
            <div class="detail-row">
                <div class="detail-label">Purchased Date:</div>
                <div class="detail-value">{{.Purchased}}</div>
            </div>
            <div class="detail-row">
                <div class="detail-label">Invoice:</div>
                <div class="detail-value">
                    {{if .Invoice}}<a href="{{.Invoice}}" class="btn btn-blue">View Invoice</a>{{else}}<span class="na-value">Not Available</span>{{end}}
                </div>
            </div>
        </div>

        <div class="info-card" id="halalInfo">
            <div class="card-title">Halal Info</div>
            <div class="detail-row">
                <div class="detail-label">Halal Certificate:</div>
                {{if .Certificate}}<div class="detail-value cert-available">Available</div>{{else}}<div class="detail-value cert-not-available">Not Available</div>{{end}}
            </div>{{if .Certificate}}
            <div class="detail-row">
                <div class="detail-label">Certificate Expiry:</div>
                {{template "expiry" .CertificateExpiry}}
            <div class="detail-row">
                <div class="detail-label">Certificate:</div>
                <div class="detail-value">
                    <a href="{{.Certificate}}" class="btn btn-blue">View Certificate</a>
                </div>
            </div>{{end}}
        </div>

        <div class="stock-request-box">
            <button type="button" class="btn btn-purple">Stock Request</button>
            <label class="quantity-label" for="quantityInput">Quantity:</label>
            <input type="text" class="quantity-input" placeholder="Enter quantity" id="quantityInput" inputmode="numeric">
            <div class="quantity-error" id="quantityError" role="alert"></div>
            <a href="#" class="btn btn-green" id="sendRequestBtn">Send Request</a>
        </div>

        <a href="index.html" class="back-btn">&larr; Back</a>
    </div>

    <script>
    (function () {
        var EXPIRED_BELOW = {{.ExpiredBelow}};
        var WARN_BELOW = {{.WarnBelow}};
        var DAY_MS = 24 * 60 * 60 * 1000;

        function localDate(year, month, day) {
            var d = new Date(0);
            d.setFullYear(year, month - 1, day);
            d.setHours(0, 0, 0, 0);
            return d;
        }

        function parseDate(raw) {
            if (!raw || raw === 'NA') return null;
            var d;
            if (raw.indexOf('/') !== -1) {
                var parts = raw.split('/');
                d = localDate(Number(parts[2]), Number(parts[1]), Number(parts[0]));
            } else if (/^\d{4}-\d{2}-\d{2}$/.test(raw)) {
                var iso = raw.split('-');
                d = localDate(Number(iso[0]), Number(iso[1]), Number(iso[2]));
            } else {
                d = new Date(raw);
            }
            return isNaN(d.getTime()) ? null : d;
        }

        function pad(n) {
            return (n < 10 ? '0' : '') + n;
        }

        function formatDate(d) {
            return pad(d.getDate()) + '/' + pad(d.getMonth() + 1) + '/' + d.getFullYear();
        }

        function daysBetween(from, to) {
            var a = Date.UTC(from.getFullYear(), from.getMonth(), from.getDate());
            var b = Date.UTC(to.getFullYear(), to.getMonth(), to.getDate());
            return Math.round((b - a) / DAY_MS);
        }

        function classify(expiry, isCertificate, today) {
            if (!expiry) return { cls: 'na-value', text: '', alert: false };
            var days = daysBetween(today, expiry);
            if (days < EXPIRED_BELOW) {
                return {
                    cls: 'expired',
                    text: '(Expired)',
                    alert: true,
                    message: isCertificate ? 'Certificate Expired. Contact PIC' : 'Item Expired. Contact PIC',
                    fullyExpired: true
                };
            }
            if (days < WARN_BELOW) {
                return {
                    cls: 'expired',
                    text: '(Expires in ' + days + ' days)',
                    alert: true,
                    message: isCertificate ? 'Certificate Nearly Expired. Contact PIC' : 'Nearly Expired. Contact PIC',
                    fullyExpired: false
                };
            }
            return { cls: 'valid', text: '(Expires in ' + days + ' days)', alert: false };
        }

        function mailto(to, subject, body) {
            return 'mailto:' + to + '?subject=' + encodeURIComponent(subject) + '&body=' + encodeURIComponent(body);
        }

        function alertHref(data, isCertificate, status) {
            var state = status.fullyExpired ? 'Expired' : 'Nearly Expired';
            var phrase = status.fullyExpired ? 'already expired' : 'nearly expired';
            if (isCertificate) {
                return mailto(data.contact,
                    'High Importance : ' + data.name + ' Halal Certificate is ' + state,
                    'Hi. The ' + data.name + ' Halal certificate is ' + phrase + '. Please do the necessary. Thank you.');
            }
            return mailto(data.contact,
                'High Importance : ' + data.name + ' is ' + state,
                'Hi. The ' + data.name + ' with Identification Number of ' + data.batch + ' is ' + phrase + '. Please do the necessary. Thank you.');
        }

        function refreshExpiry(data, today) {
            var lines = document.querySelectorAll('[data-expiry]');
            for (var i = 0; i < lines.length; i++) {
                var el = lines[i];
                var expiry = parseDate(el.getAttribute('data-expiry'));
                if (!expiry) continue;
                var isCertificate = el.getAttribute('data-context') === 'certificate';
                var status = classify(expiry, isCertificate, today);
                el.className = 'detail-value ' + status.cls;
                el.textContent = formatDate(expiry) + ' ' + status.text;

                var container = document.getElementById(el.getAttribute('data-alert'));
                if (!container) continue;
                container.innerHTML = '';
                if (status.alert) {
                    var link = document.createElement('a');
                    link.className = 'btn btn-red';
                    link.href = alertHref(data, isCertificate, status);
                    link.textContent = status.message;
                    container.appendChild(link);
                }
            }
        }

        function wireStockRequest(data) {
            var sendRequestBtn = document.getElementById('sendRequestBtn');
            var quantityInput = document.getElementById('quantityInput');
            var quantityError = document.getElementById('quantityError');

            sendRequestBtn.addEventListener('click', function (e) {
                e.preventDefault();
                var quantity = quantityInput.value.trim();

                if (!quantity) {
                    quantityError.textContent = 'Please enter a quantity';
                    return;
                }
                if (isNaN(quantity) || Number(quantity) <= 0) {
                    quantityError.textContent = 'Please enter a valid quantity number';
                    return;
                }
                quantityError.textContent = '';

                window.location.href = mailto(data.contact,
                    'Stock Request - ' + data.name,
                    'Hi. I want to request for ' + data.name +
                    ' (Item ID: ' + data.id + ', Batch/GRIS No.: ' + data.batch + ')' +
                    ' with a quantity of ' + quantity + '. Thank you.');
                quantityInput.value = '';
            });
        }

        document.addEventListener('DOMContentLoaded', function () {
            var data = document.getElementById('itemPage').dataset;
            refreshExpiry(data, new Date());
            wireStockRequest(data);
        });
    })();
    </script>
</body>
</html>
`
