package render

// Leaflet draws the map; the page only styles the layer and adds markers.
const mapPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.6.0/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.6.0/dist/leaflet.js"></script>
<style>
html, body, #map { width: 100%; height: 100%; margin: 0; padding: 0; }
.legend { background: white; padding: 6px 8px; font: 12px sans-serif; border-radius: 4px; }
.legend i { width: 18px; height: 12px; float: left; margin-right: 6px; opacity: 0.6; }
</style>
</head>
<body>
<div id="map"></div>
<script>
var center = {{.Center}};
var map = L.map('map').setView(center, {{.Zoom}});

L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
  maxZoom: 18,
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);

var baseStyle = function (feature) {
  return {
    fillColor: feature.properties.fill,
    fillOpacity: 0.6,
    color: 'black',
    weight: 1,
    opacity: 1
  };
};

var countries = L.geoJSON({{.Layer}}, {
  style: baseStyle,
  onEachFeature: function (feature, layer) {
    layer.on({
      mouseover: function (e) { e.target.setStyle({weight: 3, fillOpacity: 0.8}); },
      mouseout: function (e) { countries.resetStyle(e.target); }
    });
  }
}).addTo(map);

var legend = L.control({position: 'topright'});
legend.onAdd = function () {
  var div = L.DomUtil.create('div', 'legend');
  var title = document.createElement('strong');
  title.textContent = {{.Legend}};
  div.appendChild(title);
  {{.LegendEntries}}.forEach(function (entry) {
    var row = document.createElement('div');
    var swatch = document.createElement('i');
    swatch.style.background = entry.color;
    row.appendChild(swatch);
    row.appendChild(document.createTextNode(entry.from.toLocaleString() + ' - ' + entry.to.toLocaleString()));
    div.appendChild(row);
  });
  return div;
};
legend.addTo(map);

{{.Markers}}.forEach(function (m) {
  var popup = document.createElement('span');
  popup.textContent = m.popup;
  L.marker([m.lat, m.lng]).bindPopup(popup, {maxWidth: 1000}).addTo(map);
});
</script>
</body>
</html>
`
